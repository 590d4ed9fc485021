package usecase

import (
	"context"
	"fmt"

	"movie-theater/internal/data/entity"
	"movie-theater/internal/dto/request"
	"movie-theater/internal/dto/response"
	"movie-theater/internal/store"

	"go.uber.org/zap"
)

type NotificationService interface {
	ListNotifications(ctx context.Context) response.NotificationListResponse
	CreateNotification(ctx context.Context, req *request.CreateNotificationRequest) (*entity.Notification, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context)
}

type notificationService struct {
	store *store.Store
	log   *zap.Logger
}

func NewNotificationService(st *store.Store, log *zap.Logger) NotificationService {
	return &notificationService{
		store: st,
		log:   log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) ListNotifications(ctx context.Context) response.NotificationListResponse {
	return response.NotificationListResponse{
		Notifications: s.store.Notifications(),
		UnreadCount:   s.store.UnreadNotificationCount(),
	}
}

func (s *notificationService) CreateNotification(ctx context.Context, req *request.CreateNotificationRequest) (*entity.Notification, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	n := s.store.AddNotification(entity.Notification{
		Type:    entity.NotificationType(req.Type),
		Title:   req.Title,
		Message: req.Message,
	})

	s.log.Info("Notification created", zap.String("notification_id", n.ID), zap.String("type", req.Type))
	return &n, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, id string) error {
	if !s.store.MarkNotificationAsRead(id) {
		return fmt.Errorf("mark notification %s: %w", id, ErrNotificationNotFound)
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context) {
	s.store.MarkAllNotificationsAsRead()
}
