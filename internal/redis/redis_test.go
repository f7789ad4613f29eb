package redis

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)

	rdb, err := New(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestNew_BadURL(t *testing.T) {
	_, err := New(context.Background(), "http://nope")
	assert.Error(t, err)
}

func TestCache(t *testing.T) {
	mr, rdb := setup(t)
	c := NewCache(slog.New(slog.NewTextHandler(io.Discard, nil)), rdb, time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("42", []byte("payload"))
	got, ok := c.Get("42")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), got)
	assert.True(t, mr.Exists("order:42"))

	c.Delete("42")
	_, ok = c.Get("42")
	assert.False(t, ok)

	c.Set("7", []byte("x"))
	mr.FastForward(2 * time.Minute)
	_, ok = c.Get("7")
	assert.False(t, ok, "entries expire after ttl")
}

func TestCache_ServerDown(t *testing.T) {
	mr, rdb := setup(t)
	c := NewCache(slog.New(slog.NewTextHandler(io.Discard, nil)), rdb, time.Minute)
	mr.Close()

	c.Set("1", []byte("x"))
	_, ok := c.Get("1")
	assert.False(t, ok)
}

func TestPresence(t *testing.T) {
	mr, rdb := setup(t)
	p := NewPresence(rdb, 90*time.Second)
	ctx := context.Background()
	user := uuid.New()

	online, err := p.IsOnline(ctx, user)
	require.NoError(t, err)
	assert.False(t, online)

	require.NoError(t, p.MarkOnline(ctx, user))
	online, err = p.IsOnline(ctx, user)
	require.NoError(t, err)
	assert.True(t, online)

	mr.FastForward(91 * time.Second)
	online, err = p.IsOnline(ctx, user)
	require.NoError(t, err)
	assert.False(t, online, "presence lapses without heartbeats")

	require.NoError(t, p.MarkOnline(ctx, user))
	require.NoError(t, p.MarkOffline(ctx, user))
	online, err = p.IsOnline(ctx, user)
	require.NoError(t, err)
	assert.False(t, online)
}

func TestRealtime_Push(t *testing.T) {
	_, rdb := setup(t)
	presence := NewPresence(rdb, time.Minute)
	rt := NewRealtime(rdb, presence)
	ctx := context.Background()

	online, offline := uuid.New(), uuid.New()
	require.NoError(t, presence.MarkOnline(ctx, online))

	sub := rdb.Subscribe(ctx, Channel(online))
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	delivered, err := rt.Push(ctx, online, []byte(`{"type":"order_placed"}`))
	require.NoError(t, err)
	assert.True(t, delivered)

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, Channel(online), msg.Channel)
		assert.JSONEq(t, `{"type":"order_placed"}`, msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("message was not published")
	}

	delivered, err = rt.Push(ctx, offline, []byte(`{}`))
	require.NoError(t, err)
	assert.False(t, delivered)
}
