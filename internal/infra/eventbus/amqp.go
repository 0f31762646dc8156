package eventbus

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/pkg/config"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes booking events to a durable RabbitMQ queue.
// A connection is opened per publish; booking volume is low.
type AMQPPublisher struct {
	url    string
	queue  string
	logger *slog.Logger
}

func NewAMQPPublisher(cfg config.AMQPConfig, logger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{url: cfg.URL, queue: cfg.Queue, logger: logger}
}

func (p *AMQPPublisher) PublishBookingCreated(ctx context.Context, event commands.BookingCreatedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errs.Wrap(err, "amqp dial")
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return errs.Wrap(err, "amqp channel")
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return errs.Wrap(err, "amqp queue declare")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal booking event")
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return errs.Wrap(err, "amqp publish")
	}

	p.logger.Debug("booking event published", "queue", p.queue, "booking_id", event.BookingID)
	return nil
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishBookingCreated(context.Context, commands.BookingCreatedEvent) error {
	return nil
}

// NewPublisher picks the broker-backed publisher only when a URL is configured.
func NewPublisher(cfg config.AMQPConfig, logger *slog.Logger) commands.EventPublisher {
	if cfg.URL == "" {
		logger.Info("AMQP_URL not set, booking events disabled")
		return NopPublisher{}
	}
	return NewAMQPPublisher(cfg, logger)
}
