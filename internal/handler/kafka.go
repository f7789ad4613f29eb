package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/lens-order-service/internal/config"
	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
	"github.com/SergeyBogomolovv/lens-order-service/internal/events"

	"github.com/segmentio/kafka-go"
)

type Deliverer interface {
	Deliver(ctx context.Context, event entities.OrderEvent) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq       messageWriter
	reader    messageReader
	logger    *slog.Logger
	deliverer Deliverer
	timeout   time.Duration
}

// NewKafkaHandler consumes order events and hands them to the notification dispatcher.
func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, timeout time.Duration, deliverer Deliverer) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.Topic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newKafkaHandler(logger, reader, dlq, timeout, deliverer)
}

func newKafkaHandler(logger *slog.Logger, reader messageReader, dlq messageWriter, timeout time.Duration, deliverer Deliverer) *kafkaHandler {
	return &kafkaHandler{
		logger:    logger.With(slog.String("handler", "kafka")),
		reader:    reader,
		dlq:       dlq,
		deliverer: deliverer,
		timeout:   timeout,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) {
	eventsInProgress.Inc()
	defer eventsInProgress.Dec()
	start := time.Now()

	// уведомления не повторяем: письмо, ушедшее дважды, хуже потерянного
	if err := h.handleEvent(ctx, m); err != nil {
		eventsFailed.Inc()
		h.logger.Error("failed to handle message",
			slog.Any("error", err),
			slog.Int64("offset", m.Offset),
			slog.String("key", string(m.Key)),
		)

		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		eventsDLQ.Inc()
	} else {
		eventsProcessed.Inc()
	}
	eventProcessingDuration.Observe(time.Since(start).Seconds())

	if err := h.reader.CommitMessages(ctx, m); err != nil {
		commitErrors.Inc()
		h.logger.Error("failed to commit message", slog.Any("error", err))
	}
}

func (h *kafkaHandler) handleEvent(ctx context.Context, m kafka.Message) error {
	event, err := events.Decode(m.Value)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := h.deliverer.Deliver(ctx, event); err != nil {
		return fmt.Errorf("failed to deliver %s for order %s: %w", event.Kind, event.Order.ID, err)
	}
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	dead := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	}
	return h.dlq.WriteMessages(ctx, dead)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
