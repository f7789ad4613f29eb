package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/lens-order-service/internal/config"
	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher puts order events on the event topic, keyed by order id so all
// events of one order land on one partition in order.
type Publisher struct {
	logger *slog.Logger
	writer MessageWriter
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return NewPublisherWithWriter(logger, &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: cfg.BatchTimeout,
	})
}

func NewPublisherWithWriter(logger *slog.Logger, writer MessageWriter) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("component", "events")),
		writer: writer,
	}
}

// Deliver writes event to the topic and blocks until the broker acks it.
// Callers run it behind notify.Async so a slow broker never holds a request.
func (p *Publisher) Deliver(ctx context.Context, event entities.OrderEvent) error {
	data, err := json.Marshal(EventToJSON(event))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Order.ID.String()),
		Value: data,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event.Kind)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Kind, err)
	}

	p.logger.Debug("event published",
		slog.String("event", string(event.Kind)),
		slog.String("order_id", event.Order.ID.String()),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
