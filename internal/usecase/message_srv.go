package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-theater/internal/data/entity"
	"movie-theater/internal/data/seed"
	"movie-theater/internal/dto/request"
	"movie-theater/internal/dto/response"
	"movie-theater/internal/store"
	"movie-theater/pkg/tasks"

	"go.uber.org/zap"
)

const SupportAutoReply = "Thank you for your message. Our team will get back to you shortly."

type MessageService interface {
	ListMessages(ctx context.Context) response.MessageListResponse
	SendMessage(ctx context.Context, req *request.SendMessageRequest) (*entity.Message, error)
	MarkAsRead(ctx context.Context, id string) error
}

type messageService struct {
	store      *store.Store
	scheduler  *tasks.Scheduler
	replyDelay time.Duration
	log        *zap.Logger
}

func NewMessageService(st *store.Store, scheduler *tasks.Scheduler, replyDelay time.Duration, log *zap.Logger) MessageService {
	return &messageService{
		store:      st,
		scheduler:  scheduler,
		replyDelay: replyDelay,
		log:        log.With(zap.String("service", "message")),
	}
}

func (s *messageService) ListMessages(ctx context.Context) response.MessageListResponse {
	return response.MessageListResponse{
		Messages:    s.store.Messages(),
		UnreadCount: s.store.UnreadMessageCount(),
	}
}

// SendMessage appends the user's message, already read, and schedules the
// canned support reply.
func (s *messageService) SendMessage(ctx context.Context, req *request.SendMessageRequest) (*entity.Message, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	msg := s.store.AddMessage(entity.Message{
		Sender:  entity.SenderUser,
		Content: req.Content,
		Avatar:  s.store.UserProfile().Avatar,
	})
	s.store.MarkMessageAsRead(msg.ID)
	msg.Read = true

	scheduled := s.scheduler.After(s.replyDelay, func() {
		reply := s.store.AddMessage(entity.Message{
			Sender:  entity.SenderSupport,
			Content: SupportAutoReply,
			Avatar:  seed.SupportAvatar,
		})
		s.log.Debug("Support reply sent", zap.String("message_id", reply.ID), zap.String("reply_to", msg.ID))
	})
	if !scheduled {
		s.log.Warn("Support reply not scheduled", zap.String("message_id", msg.ID))
	}

	s.log.Info("Message sent", zap.String("message_id", msg.ID))
	return &msg, nil
}

func (s *messageService) MarkAsRead(ctx context.Context, id string) error {
	if !s.store.MarkMessageAsRead(id) {
		return fmt.Errorf("mark message %s: %w", id, ErrMessageNotFound)
	}
	return nil
}
