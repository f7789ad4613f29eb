package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
)

var ErrClosed = errors.New("notifier is closed")

type Deliverer interface {
	Deliver(ctx context.Context, event entities.OrderEvent) error
}

// Async hands events to a Deliverer on background goroutines so the request
// that produced them returns right away.
type Async struct {
	logger    *slog.Logger
	deliverer Deliverer
	timeout   time.Duration

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewAsync(logger *slog.Logger, deliverer Deliverer, timeout time.Duration) *Async {
	return &Async{
		logger:    logger.With(slog.String("component", "notify_async")),
		deliverer: deliverer,
		timeout:   timeout,
	}
}

func (a *Async) Notify(ctx context.Context, event entities.OrderEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return ErrClosed
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		// доставка переживает завершение запроса
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.timeout)
		defer cancel()

		if err := a.deliverer.Deliver(ctx, event); err != nil {
			a.logger.Error("notification delivery failed",
				slog.String("event", string(event.Kind)),
				slog.String("order_id", event.Order.ID.String()),
				slog.Any("error", err),
			)
		}
	}()
	return nil
}

// Close stops accepting events and waits for the in-flight ones.
func (a *Async) Close() error {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()

	a.wg.Wait()
	return nil
}
