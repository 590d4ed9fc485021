package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	minBackoff = time.Second
	maxBackoff = 30 * time.Second
)

// Consumer reads the booking.created queue and feeds each event to a
// Handler, reconnecting with exponential backoff when the broker goes away.
type Consumer struct {
	url     string
	handler Handler
	log     *zap.Logger
}

func NewConsumer(url string, handler Handler, log *zap.Logger) *Consumer {
	return &Consumer{
		url:     url,
		handler: handler,
		log:     log.With(zap.String("component", "booking-consumer")),
	}
}

// Run blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := minBackoff
	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.log.Warn("Failed to dial broker", zap.Error(err), zap.Duration("retry_in", backoff))
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}
		backoff = minBackoff

		err = c.consume(ctx, conn)
		conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Warn("Consume loop ended, reconnecting", zap.Error(err))
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer ch.Close()

	if err := ch.Qos(50, 0, false); err != nil {
		c.log.Warn("Failed to set QoS", zap.Error(err))
	}
	if err := declareQueue(ch); err != nil {
		return err
	}

	deliveries, err := ch.Consume(BookingCreatedQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	c.log.Info("Consuming booking events", zap.String("queue", BookingCreatedQueue))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := c.handle(ctx, d.Body); err != nil {
				c.log.Error("Failed to handle booking event", zap.Error(err))
				// reject without requeue so a bad message cannot loop forever
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, body []byte) error {
	var event BookingCreatedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return c.handler(ctx, event)
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
