package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-booking/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes booking events to a durable topic exchange over a
// single long lived connection.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
	logger   *slog.Logger
	now      func() time.Time
}

func NewAMQPPublisher(url, exchange string, logger *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to message broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open broker channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %q: %w", exchange, err)
	}

	publisher := newPublisher(ch, exchange, logger)
	publisher.conn = conn

	return publisher, nil
}

func newPublisher(ch channel, exchange string, logger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *AMQPPublisher) PublishBookingCreated(ctx context.Context, booking domain.Booking) error {
	return p.publish(ctx, RoutingKeyBookingCreated, booking)
}

func (p *AMQPPublisher) PublishBookingCancelled(ctx context.Context, booking domain.Booking) error {
	return p.publish(ctx, RoutingKeyBookingCancelled, booking)
}

func (p *AMQPPublisher) publish(ctx context.Context, routingKey string, booking domain.Booking) error {
	now := p.now()

	body, err := json.Marshal(newBookingEvent(routingKey, booking, now))
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    now.UTC(),
		Type:         routingKey,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
	if err != nil {
		return fmt.Errorf("failed to publish %s for booking %d: %w", routingKey, booking.ID, err)
	}

	p.logger.Debug("published booking event", "routing_key", routingKey, "booking_id", booking.ID, "message_id", msg.MessageId)

	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.Close()

	if p.conn != nil {
		if connErr := p.conn.Close(); connErr != nil && err == nil {
			err = connErr
		}
	}

	return err
}
