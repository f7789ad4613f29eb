package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
	"github.com/SergeyBogomolovv/lens-order-service/internal/events"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []int64
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.queue[0]
	r.queue = r.queue[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

type fakeDLQ struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeDLQ) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeDLQ) Close() error {
	w.closed = true
	return nil
}

type deliverFunc func(ctx context.Context, event entities.OrderEvent) error

func (f deliverFunc) Deliver(ctx context.Context, event entities.OrderEvent) error {
	return f(ctx, event)
}

func encodedEvent(t *testing.T) (entities.OrderEvent, []byte) {
	t.Helper()
	item := entities.Item{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		Quantity:  1,
		Price:     decimal.NewFromInt(10),
		SellerID:  uuid.New(),
		Status:    entities.StatusPending,
	}
	order := entities.Order{ID: uuid.New(), BuyerID: uuid.New(), Items: []entities.Item{item}, Total: item.Subtotal()}
	event := entities.NewOrderEvent(entities.EventOrderPlaced, order, order.BuyerID)

	data, err := json.Marshal(events.EventToJSON(event))
	require.NoError(t, err)
	return event, data
}

func TestKafkaHandler_Consume(t *testing.T) {
	event, data := encodedEvent(t)
	reader := &fakeReader{queue: []kafka.Message{
		{Topic: "order-events", Offset: 1, Value: data},
		{Topic: "order-events", Offset: 2, Value: []byte("{broken")},
		{Topic: "order-events", Offset: 3, Value: data},
	}}
	dlq := &fakeDLQ{}

	var delivered []uuid.UUID
	calls := 0
	deliverer := deliverFunc(func(ctx context.Context, e entities.OrderEvent) error {
		calls++
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		if calls == 2 {
			return errors.New("smtp down")
		}
		delivered = append(delivered, e.ID)
		return nil
	})

	h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, time.Second, deliverer)
	h.Consume(context.Background())

	assert.Equal(t, []uuid.UUID{event.ID}, delivered)
	assert.Equal(t, []int64{1, 2, 3}, reader.committed, "every message is committed once handled")

	require.Len(t, dlq.msgs, 2)
	assert.Equal(t, "order-events-dlq", dlq.msgs[0].Topic)
	assert.Equal(t, []byte("{broken"), dlq.msgs[0].Value)
	assert.Equal(t, data, dlq.msgs[1].Value)

	require.NoError(t, h.Close())
	assert.True(t, reader.closed)
	assert.True(t, dlq.closed)
}

func TestKafkaHandler_DLQFailureLeavesMessageUncommitted(t *testing.T) {
	reader := &fakeReader{queue: []kafka.Message{{Topic: "order-events", Offset: 7, Value: []byte("{}")}}}
	dlq := &fakeDLQ{err: errors.New("broker unavailable")}
	deliverer := deliverFunc(func(context.Context, entities.OrderEvent) error {
		t.Fatal("invalid event must not be delivered")
		return nil
	})

	h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, time.Second, deliverer)
	h.Consume(context.Background())

	assert.Empty(t, reader.committed)
}
