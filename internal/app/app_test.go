package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/SergeyBogomolovv/lens-order-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

type blockingConsumer struct {
	stopped atomic.Bool
	closed  atomic.Bool
}

func (c *blockingConsumer) Consume(ctx context.Context) {
	<-ctx.Done()
	c.stopped.Store(true)
}

func (c *blockingConsumer) Close() error {
	c.closed.Store(true)
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func testConfig() config.Config {
	cfg := config.New()
	cfg.Http.Host = "127.0.0.1"
	cfg.Http.Port = "0"
	return cfg
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestHealthz(t *testing.T) {
	testCases := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{name: "ok", wantStatus: http.StatusOK},
		{name: "db down", pingErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := New(discard, testConfig(), pingerFunc(func(context.Context) error { return tc.pingErr }))

			rr := httptest.NewRecorder()
			a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	a := New(discard, testConfig(), pingerFunc(func(context.Context) error { return nil }))

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "lens_orders_http_in_flight_requests")
}

func TestStartStop(t *testing.T) {
	a := New(discard, testConfig(), pingerFunc(func(context.Context) error { return nil }))

	started := false
	consumer := &blockingConsumer{}
	closed := false
	a.SetStarters(starterFunc(func(context.Context) error { started = true; return nil }))
	a.SetConsumers(consumer)
	a.SetClosers(closerFunc(func() error { closed = true; return nil }))

	require.NoError(t, a.Start(context.Background()))
	assert.True(t, started)

	require.NoError(t, a.Stop())
	assert.True(t, consumer.stopped.Load())
	assert.True(t, consumer.closed.Load())
	assert.True(t, closed)
}

func TestStart_StarterFails(t *testing.T) {
	a := New(discard, testConfig(), pingerFunc(func(context.Context) error { return nil }))
	boom := errors.New("boom")
	a.SetStarters(starterFunc(func(context.Context) error { return boom }))

	assert.ErrorIs(t, a.Start(context.Background()), boom)
}
