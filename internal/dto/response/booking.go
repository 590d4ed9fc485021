package response

import "movie-theater/internal/data/entity"

type BookingResponse struct {
	entity.Booking
	CanCancel bool `json:"canCancel"`
}

func BookingToResponse(b entity.Booking) BookingResponse {
	return BookingResponse{
		Booking:   b,
		CanCancel: b.Status == entity.BookingStatusUpcoming,
	}
}

func BookingsToResponse(bookings []entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = BookingToResponse(b)
	}
	return out
}
