package usecase

import (
	"context"

	"movie-theater/internal/data/entity"
	"movie-theater/internal/data/seed"
	"movie-theater/internal/store"

	"go.uber.org/zap"
)

// Pricing of the booking wizard.
const (
	SeatPrice  = 15.0
	BookingFee = 2.0
	MaxSeats   = 8
)

type CinemaService interface {
	GetBookingOptions(ctx context.Context) entity.ShowOptions
	GetOffers(ctx context.Context) []entity.Offer
}

type cinemaService struct {
	store *store.Store
	log   *zap.Logger
}

func NewCinemaService(st *store.Store, log *zap.Logger) CinemaService {
	return &cinemaService{
		store: st,
		log:   log.With(zap.String("service", "cinema")),
	}
}

func (s *cinemaService) GetBookingOptions(ctx context.Context) entity.ShowOptions {
	return bookingOptions()
}

func bookingOptions() entity.ShowOptions {
	return entity.ShowOptions{
		Theaters:   seed.Theaters(),
		Showtimes:  seed.Showtimes(),
		Layout:     seed.SeatLayout(),
		SeatPrice:  SeatPrice,
		BookingFee: BookingFee,
		MaxSeats:   MaxSeats,
	}
}

func (s *cinemaService) GetOffers(ctx context.Context) []entity.Offer {
	return s.store.Offers()
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
