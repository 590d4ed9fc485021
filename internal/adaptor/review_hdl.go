package adaptor

import (
	"net/http"

	"movie-theater/internal/dto/request"
	"movie-theater/internal/usecase"
	"movie-theater/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GetReviews handles GET /api/movies/{id}/reviews
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListReviews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// CreateReview handles POST /api/movies/{id}/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	review, err := h.service.AddReview(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review added successfully", review)
}
