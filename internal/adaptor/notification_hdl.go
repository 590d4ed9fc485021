package adaptor

import (
	"net/http"

	"movie-theater/internal/dto/request"
	"movie-theater/internal/usecase"
	"movie-theater/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	service usecase.NotificationService
	log     *zap.Logger
}

func NewNotificationHandler(service usecase.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log.With(zap.String("handler", "notification")),
	}
}

// GetNotifications handles GET /api/notifications
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.ListNotifications(r.Context()))
}

// CreateNotification handles POST /api/notifications
func (h *NotificationHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req request.CreateNotificationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	n, err := h.service.CreateNotification(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create notification")
		return
	}

	utils.ResponseCreated(w, "Notification created", n)
}

// MarkAsRead handles PUT /api/notifications/{id}/read
func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkAsRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "mark notification as read")
		return
	}

	utils.ResponseSuccess(w, "Notification marked as read", nil)
}

// MarkAllAsRead handles PUT /api/notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	h.service.MarkAllAsRead(r.Context())
	utils.ResponseSuccess(w, "All notifications marked as read", nil)
}
