package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AMQPPublisher publishes persistent JSON messages to the booking.created
// queue over one long-lived connection.
type AMQPPublisher struct {
	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
	log  *zap.Logger
}

func NewAMQPPublisher(url string, log *zap.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareQueue(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &AMQPPublisher{
		conn: conn,
		ch:   ch,
		log:  log.With(zap.String("publisher", "amqp")),
	}, nil
}

func declareQueue(ch *amqp.Channel) error {
	_, err := ch.QueueDeclare(
		BookingCreatedQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	return nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event BookingCreatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.BookingID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// default exchange, routing key = queue name
	if err := p.ch.PublishWithContext(ctx, "", BookingCreatedQueue, false, false, msg); err != nil {
		p.log.Error("Failed to publish booking event", zap.Error(err), zap.String("booking_id", event.BookingID))
		return fmt.Errorf("publish: %w", err)
	}

	p.log.Debug("Booking event published", zap.String("booking_id", event.BookingID))
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ch.Close()
	return p.conn.Close()
}
