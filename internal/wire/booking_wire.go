package wire

import (
	"movie-theater/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Get("/", bookingHandler.GetBookings)               // GET /api/bookings?status=upcoming|past
		r.Post("/", bookingHandler.CreateBooking)            // POST /api/bookings
		r.Get("/{id}", bookingHandler.GetBookingByID)        // GET /api/bookings/{id}
		r.Post("/{id}/cancel", bookingHandler.CancelBooking) // POST /api/bookings/{id}/cancel
		r.Delete("/{id}", bookingHandler.DeleteBooking)      // DELETE /api/bookings/{id}
	})
}
