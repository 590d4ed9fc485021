package adaptor

import (
	"net/http"

	"movie-theater/internal/dto/request"
	"movie-theater/internal/usecase"
	"movie-theater/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies?search=&genre=&page=&per_page=
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.MovieListRequest{
		Search:      query.Get("search"),
		Genre:       query.Get("genre"),
		PageRequest: request.PageFromQuery(query),
	}

	movies, err := h.service.ListMovies(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get movies")
		return
	}

	utils.ResponsePaginated(w, "success", movies.Data, movies.Pagination)
}

// GetGenres handles GET /api/movies/genres
func (h *MovieHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.GetGenres(r.Context()))
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovie(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// CreateMovie handles POST /api/admin/movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if !decodeBody(w, r, &req) {
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// UpdateMovie handles PUT /api/admin/movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// DeleteMovie handles DELETE /api/admin/movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMovie(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", nil)
}
