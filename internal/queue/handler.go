package queue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movie-theater/internal/data/entity"
)

// NotificationSink is the part of the store the handler writes to.
type NotificationSink interface {
	AddNotification(n entity.Notification) entity.Notification
}

// NotificationHandler turns every booking event into a "Booking Confirmed"
// notification.
func NotificationHandler(sink NotificationSink) Handler {
	return func(_ context.Context, event BookingCreatedEvent) error {
		sink.AddNotification(entity.Notification{
			Type:  entity.NotificationTypeBooking,
			Title: "Booking Confirmed",
			Message: fmt.Sprintf("Your booking for %s on %s at %s has been confirmed! Seats: %s.",
				event.MovieTitle, showDate(event.Date), event.Time, strings.Join(event.Seats, ", ")),
		})
		return nil
	}
}

// showDate renders "2025-05-20" as "May 20th".
func showDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	day := t.Day()
	suffix := "th"
	switch {
	case day%100 >= 11 && day%100 <= 13:
	case day%10 == 1:
		suffix = "st"
	case day%10 == 2:
		suffix = "nd"
	case day%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%s %d%s", t.Month(), day, suffix)
}
