package wire

import (
	"net/http"

	"movie-theater/internal/adaptor"
	"movie-theater/internal/queue"
	"movie-theater/internal/store"
	"movie-theater/internal/usecase"
	"movie-theater/pkg/middleware"
	"movie-theater/pkg/tasks"
	"movie-theater/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring menginisialisasi semua dependencies
func Wiring(st *store.Store, publisher queue.Publisher, scheduler *tasks.Scheduler, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(st, publisher, scheduler, config, logger)
	handler := adaptor.NewHandler(service, st, logger)

	return &App{
		Router:  setupRouter(handler, config, logger),
		Service: service,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(config.RateLimit, logger))

	// Apply routes
	wireMovie(r, handler.Movie)
	wireReview(r, handler.Review)
	wireCinema(r, handler.Cinema)
	wireBooking(r, handler.Booking)
	wireUser(r, handler.User, handler.Message, handler.Notification)

	// Store change stream
	r.Get("/api/events", handler.Events.Stream)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
