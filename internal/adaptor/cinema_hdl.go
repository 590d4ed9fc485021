package adaptor

import (
	"net/http"

	"movie-theater/internal/usecase"
	"movie-theater/pkg/utils"

	"go.uber.org/zap"
)

type CinemaHandler struct {
	service usecase.CinemaService
	log     *zap.Logger
}

func NewCinemaHandler(service usecase.CinemaService, log *zap.Logger) *CinemaHandler {
	return &CinemaHandler{
		service: service,
		log:     log.With(zap.String("handler", "cinema")),
	}
}

// GetBookingOptions handles GET /api/booking-options
func (h *CinemaHandler) GetBookingOptions(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.GetBookingOptions(r.Context()))
}

// GetOffers handles GET /api/offers
func (h *CinemaHandler) GetOffers(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.GetOffers(r.Context()))
}
