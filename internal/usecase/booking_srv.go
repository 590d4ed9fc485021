package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-theater/internal/data/entity"
	"movie-theater/internal/dto/request"
	"movie-theater/internal/dto/response"
	"movie-theater/internal/queue"
	"movie-theater/internal/store"
	"movie-theater/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, req request.BookingListRequest) ([]response.BookingResponse, error)
	GetBooking(ctx context.Context, id string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, id string) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, id string) error
}

type bookingService struct {
	store     *store.Store
	publisher queue.Publisher
	now       func() time.Time
	log       *zap.Logger
}

func NewBookingService(st *store.Store, publisher queue.Publisher, log *zap.Logger) BookingService {
	return &bookingService{
		store:     st,
		publisher: publisher,
		now:       time.Now,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create booking validation failed", zap.Error(err))
		return nil, err
	}

	movie, ok := s.store.MovieByID(req.MovieID)
	if !ok {
		return nil, fmt.Errorf("movie %s: %w", req.MovieID, ErrMovieNotFound)
	}

	options := bookingOptions()
	if !contains(options.Theaters, req.Theater) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTheater, req.Theater)
	}
	if !contains(options.Showtimes, req.Time) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShowtime, req.Time)
	}

	// date was checked against the layout by the validator
	showDate, _ := time.Parse("2006-01-02", req.Date)
	if showDate.Before(truncateDay(s.now().UTC())) {
		return nil, fmt.Errorf("%w: %s", ErrPastShowDate, req.Date)
	}

	if len(req.Seats) > options.MaxSeats {
		return nil, fmt.Errorf("%w: %d selected, max %d", ErrTooManySeats, len(req.Seats), options.MaxSeats)
	}
	for _, seat := range req.Seats {
		if !options.Layout.Exists(seat) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSeat, seat)
		}
		if !options.Layout.IsAvailable(seat) {
			return nil, fmt.Errorf("%w: %s", ErrSeatUnavailable, seat)
		}
	}

	total := float64(len(req.Seats))*options.SeatPrice + options.BookingFee

	booking, err := s.store.AddBooking(ctx, entity.Booking{
		MovieID:     movie.ID,
		MovieTitle:  movie.Title,
		Poster:      movie.Poster,
		Theater:     req.Theater,
		Date:        req.Date,
		Time:        req.Time,
		Seats:       req.Seats,
		TotalAmount: total,
	})
	if err != nil {
		s.log.Error("Failed to create booking", zap.Error(err), zap.String("movie_id", movie.ID))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("movie_id", movie.ID),
		zap.Int("seat_count", len(booking.Seats)),
		zap.Float64("total_amount", total),
	)

	// The booking is already stored; a failed event only costs the notification.
	if err := s.publisher.Publish(ctx, queue.NewBookingCreatedEvent(booking, s.now())); err != nil {
		s.log.Warn("Failed to publish booking event", zap.Error(err), zap.String("booking_id", booking.ID))
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *bookingService) ListBookings(ctx context.Context, req request.BookingListRequest) ([]response.BookingResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	var bookings []entity.Booking
	switch req.Status {
	case "upcoming":
		bookings = s.store.UpcomingBookings()
	case "past":
		bookings = s.store.PastBookings()
	default:
		bookings = s.store.Bookings()
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*response.BookingResponse, error) {
	booking, ok := s.store.BookingByID(id)
	if !ok {
		return nil, fmt.Errorf("get booking %s: %w", id, ErrBookingNotFound)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// CancelBooking moves an upcoming booking to cancelled. There is no way back.
// The status check and the update happen under one store lock, so only one of
// two concurrent cancels wins.
func (s *bookingService) CancelBooking(ctx context.Context, id string) (*response.BookingResponse, error) {
	booking, found, applied, err := s.store.UpdateBookingIf(ctx, id,
		func(b entity.Booking) bool { return b.Status == entity.BookingStatusUpcoming },
		entity.BookingPatch{Status: utils.Ptr(entity.BookingStatusCancelled)},
	)
	if !found {
		return nil, fmt.Errorf("cancel booking %s: %w", id, ErrBookingNotFound)
	}
	if !applied {
		return nil, fmt.Errorf("cancel booking %s (%s): %w", id, booking.Status, ErrBookingNotCancelable)
	}
	if err != nil {
		return nil, fmt.Errorf("cancel booking %s: %w", id, err)
	}

	s.log.Info("Booking cancelled", zap.String("booking_id", id))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id string) error {
	found, err := s.store.DeleteBooking(ctx, id)
	if !found {
		return fmt.Errorf("delete booking %s: %w", id, ErrBookingNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete booking %s: %w", id, err)
	}

	s.log.Info("Booking deleted", zap.String("booking_id", id))
	return nil
}
