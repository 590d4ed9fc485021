package usecase

import (
	"errors"
	"fmt"

	"movie-theater/pkg/utils"
)

var (
	ErrMovieNotFound        = errors.New("movie not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrUnknownTheater       = errors.New("unknown theater")
	ErrUnknownShowtime      = errors.New("unknown showtime")
	ErrPastShowDate         = errors.New("show date is in the past")
	ErrInvalidSeat          = errors.New("seat does not exist")
	ErrSeatUnavailable      = errors.New("seat is not available")
	ErrTooManySeats         = errors.New("too many seats")
	ErrBookingNotCancelable = errors.New("only upcoming bookings can be cancelled")
)

// ValidationError carries per-field messages keyed by json field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", utils.FormatValidationErrors(e.Fields))
}

func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
