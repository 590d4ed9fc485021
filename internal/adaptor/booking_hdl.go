package adaptor

import (
	"net/http"

	"movie-theater/internal/dto/request"
	"movie-theater/internal/usecase"
	"movie-theater/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created successfully", booking)
}

// GetBookings handles GET /api/bookings?status=upcoming|past
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListBookings(r.Context(), request.BookingListRequest{
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		handleServiceError(w, h.log, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.GetBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved successfully", booking)
}

// CancelBooking handles POST /api/bookings/{id}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.CancelBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled successfully", booking)
}

// DeleteBooking handles DELETE /api/bookings/{id}
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBooking(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "Booking deleted successfully", nil)
}
