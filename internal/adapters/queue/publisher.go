// Package queue publishes scheduling events to RabbitMQ for host-side
// consumers (notifications, analytics). Publishing is best-effort: errors are
// returned so callers can log them, but an accepted booking is never rolled
// back because a message could not be sent.
package queue

import (
	"context"
	"encoding/json"
	"time"

	"cinephoria/internal/domain"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Queue names declared by the publisher. Durable, so messages survive broker
// restarts.
const (
	QueueSessionScheduled  = "session.scheduled"
	QueueSessionsCancelled = "session.cancelled"
)

// Publisher implements domain.SessionEventPublisher over AMQP. A connection is
// dialed per publish; the scheduler's call rate is administrative, not hot-path.
type Publisher struct {
	URL string
}

func NewPublisher(url string) *Publisher {
	return &Publisher{URL: url}
}

func (p *Publisher) PublishSessionScheduled(ctx context.Context, event domain.SessionScheduledEvent) error {
	return p.publish(ctx, QueueSessionScheduled, event)
}

func (p *Publisher) PublishSessionsCancelled(ctx context.Context, event domain.SessionsCancelledEvent) error {
	return p.publish(ctx, QueueSessionsCancelled, event)
}

func (p *Publisher) publish(ctx context.Context, queueName string, event any) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	return ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		pub,
	)
}

// Noop discards events. It is used when no broker is configured.
type Noop struct{}

func (Noop) PublishSessionScheduled(ctx context.Context, event domain.SessionScheduledEvent) error {
	return nil
}

func (Noop) PublishSessionsCancelled(ctx context.Context, event domain.SessionsCancelledEvent) error {
	return nil
}
