package queue

import (
	"context"

	"go.uber.org/zap"
)

// LocalPublisher hands events to the handler in the calling goroutine.
type LocalPublisher struct {
	handler Handler
	log     *zap.Logger
}

func NewLocalPublisher(handler Handler, log *zap.Logger) *LocalPublisher {
	return &LocalPublisher{
		handler: handler,
		log:     log.With(zap.String("publisher", "local")),
	}
}

func (p *LocalPublisher) Publish(ctx context.Context, event BookingCreatedEvent) error {
	if err := p.handler(ctx, event); err != nil {
		p.log.Error("Failed to handle booking event", zap.Error(err), zap.String("booking_id", event.BookingID))
		return err
	}
	return nil
}

func (p *LocalPublisher) Close() error { return nil }
