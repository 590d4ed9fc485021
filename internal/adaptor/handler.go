package adaptor

import (
	"errors"
	"net/http"

	"movie-theater/internal/store"
	"movie-theater/internal/usecase"
	"movie-theater/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie        *MovieHandler
	Cinema       *CinemaHandler
	Booking      *BookingHandler
	Review       *ReviewHandler
	User         *UserHandler
	Message      *MessageHandler
	Notification *NotificationHandler
	Events       *EventsHandler
}

func NewHandler(service *usecase.Service, st *store.Store, log *zap.Logger) *Handler {
	return &Handler{
		Movie:        NewMovieHandler(service.Movie, log),
		Cinema:       NewCinemaHandler(service.Cinema, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Review:       NewReviewHandler(service.Review, log),
		User:         NewUserHandler(service.User, log),
		Message:      NewMessageHandler(service.Message, log),
		Notification: NewNotificationHandler(service.Notification, log),
		Events:       NewEventsHandler(st, log),
	}
}

// handleServiceError maps usecase errors onto the response envelope.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Any("errors", validationErr.Fields))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, usecase.ErrMovieNotFound),
		errors.Is(err, usecase.ErrBookingNotFound),
		errors.Is(err, usecase.ErrMessageNotFound),
		errors.Is(err, usecase.ErrNotificationNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrUnknownTheater),
		errors.Is(err, usecase.ErrUnknownShowtime),
		errors.Is(err, usecase.ErrPastShowDate),
		errors.Is(err, usecase.ErrInvalidSeat),
		errors.Is(err, usecase.ErrTooManySeats):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrSeatUnavailable),
		errors.Is(err, usecase.ErrBookingNotCancelable):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// decodeBody reads the JSON body into dst and answers 400 itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.DecodeJSON(w, r, dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", map[string]string{"body": err.Error()})
		return false
	}
	return true
}
