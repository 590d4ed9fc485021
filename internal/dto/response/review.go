package response

import "movie-theater/internal/data/entity"

type ReviewListResponse struct {
	MovieID       string          `json:"movieId"`
	AverageRating float64         `json:"averageRating"`
	Reviews       []entity.Review `json:"reviews"`
	Sample        bool            `json:"sample"` // placeholder reviews, the movie has none yet
}

func NewReviewListResponse(movieID string, reviews []entity.Review) ReviewListResponse {
	if reviews == nil {
		reviews = []entity.Review{}
	}

	var avg float64
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		avg = float64(sum) / float64(len(reviews))
	}

	return ReviewListResponse{
		MovieID:       movieID,
		AverageRating: avg,
		Reviews:       reviews,
	}
}
