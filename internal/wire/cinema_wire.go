package wire

import (
	"movie-theater/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCinema(r chi.Router, cinemaHandler *adaptor.CinemaHandler) {
	// Theaters, showtimes, seat map and pricing for the booking wizard
	r.Get("/api/booking-options", cinemaHandler.GetBookingOptions)
	r.Get("/api/offers", cinemaHandler.GetOffers)
}
