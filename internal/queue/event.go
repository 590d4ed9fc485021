// Package queue carries booking events from the booking flow to whoever
// reacts to them. Events go either straight to an in-process handler or
// through the durable booking.created RabbitMQ queue.
package queue

import (
	"context"
	"time"

	"movie-theater/internal/data/entity"
)

const BookingCreatedQueue = "booking.created"

type BookingCreatedEvent struct {
	BookingID   string    `json:"bookingId"`
	MovieID     string    `json:"movieId"`
	MovieTitle  string    `json:"movieTitle"`
	Theater     string    `json:"theater"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Seats       []string  `json:"seats"`
	TotalAmount float64   `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewBookingCreatedEvent(b entity.Booking, at time.Time) BookingCreatedEvent {
	return BookingCreatedEvent{
		BookingID:   b.ID,
		MovieID:     b.MovieID,
		MovieTitle:  b.MovieTitle,
		Theater:     b.Theater,
		Date:        b.Date,
		Time:        b.Time,
		Seats:       append([]string(nil), b.Seats...),
		TotalAmount: b.TotalAmount,
		CreatedAt:   at.UTC(),
	}
}

type Handler func(ctx context.Context, event BookingCreatedEvent) error

type Publisher interface {
	Publish(ctx context.Context, event BookingCreatedEvent) error
	Close() error
}
