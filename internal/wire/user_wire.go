package wire

import (
	"movie-theater/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser mounts everything that belongs to the single app user: profile,
// support chat and notifications.
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	messageHandler *adaptor.MessageHandler,
	notificationHandler *adaptor.NotificationHandler,
) {
	r.Get("/api/profile", userHandler.GetProfile)
	r.Put("/api/profile", userHandler.UpdateProfile)

	r.Route("/api/messages", func(r chi.Router) {
		r.Get("/", messageHandler.GetMessages)
		r.Post("/", messageHandler.SendMessage)
		r.Put("/{id}/read", messageHandler.MarkAsRead)
	})

	r.Route("/api/notifications", func(r chi.Router) {
		r.Get("/", notificationHandler.GetNotifications)
		r.Post("/", notificationHandler.CreateNotification)
		r.Put("/read-all", notificationHandler.MarkAllAsRead)
		r.Put("/{id}/read", notificationHandler.MarkAsRead)
	})
}
