package usecase

import (
	"movie-theater/internal/queue"
	"movie-theater/internal/store"
	"movie-theater/pkg/tasks"
	"movie-theater/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie        MovieService
	Cinema       CinemaService
	Booking      BookingService
	Review       ReviewService
	User         UserService
	Message      MessageService
	Notification NotificationService
}

func NewService(st *store.Store, publisher queue.Publisher, scheduler *tasks.Scheduler, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Movie:        NewMovieService(st, log),
		Cinema:       NewCinemaService(st, log),
		Booking:      NewBookingService(st, publisher, log),
		Review:       NewReviewService(st, log),
		User:         NewUserService(st, log),
		Message:      NewMessageService(st, scheduler, config.Support.ReplyDelay, log),
		Notification: NewNotificationService(st, log),
	}
}
