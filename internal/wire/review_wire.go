package wire

import (
	"movie-theater/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	r.Get("/api/movies/{id}/reviews", reviewHandler.GetReviews)
	r.Post("/api/movies/{id}/reviews", reviewHandler.CreateReview)
}
