package usecase

import (
	"context"
	"fmt"
	"strings"

	"movie-theater/internal/data/entity"
	"movie-theater/internal/data/seed"
	"movie-theater/internal/dto/request"
	"movie-theater/internal/dto/response"
	"movie-theater/internal/store"

	"go.uber.org/zap"
)

type ReviewService interface {
	ListReviews(ctx context.Context, movieID string) (*response.ReviewListResponse, error)
	AddReview(ctx context.Context, movieID string, req *request.CreateReviewRequest) (*entity.Review, error)
}

type reviewService struct {
	store *store.Store
	log   *zap.Logger
}

func NewReviewService(st *store.Store, log *zap.Logger) ReviewService {
	return &reviewService{
		store: st,
		log:   log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) ListReviews(ctx context.Context, movieID string) (*response.ReviewListResponse, error) {
	movie, ok := s.store.MovieByID(movieID)
	if !ok {
		return nil, fmt.Errorf("list reviews %s: %w", movieID, ErrMovieNotFound)
	}

	if len(movie.Reviews) == 0 {
		resp := response.NewReviewListResponse(movie.ID, seed.ReviewUsers())
		resp.Sample = true
		return &resp, nil
	}

	resp := response.NewReviewListResponse(movie.ID, movie.Reviews)
	return &resp, nil
}

func (s *reviewService) AddReview(ctx context.Context, movieID string, req *request.CreateReviewRequest) (*entity.Review, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Add review validation failed", zap.Error(err))
		return nil, err
	}

	review, found, err := s.store.AddReview(ctx, movieID, entity.Review{
		Name:   strings.TrimSpace(req.Name),
		Avatar: req.Avatar,
		Rating: req.Rating,
		Review: strings.TrimSpace(req.Review),
	})
	if !found {
		return nil, fmt.Errorf("add review %s: %w", movieID, ErrMovieNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("add review %s: %w", movieID, err)
	}

	s.log.Info("Review added",
		zap.String("movie_id", movieID),
		zap.String("review_id", review.ID),
		zap.Int("rating", review.Rating),
	)
	return &review, nil
}
