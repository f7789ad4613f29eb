package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestCache(capacity int, ttl time.Duration) (*LRUCache, *clock) {
	clk := &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	return NewLRUCache(capacity, ttl, WithClock(clk.now)), clk
}

func TestLRUCache(t *testing.T) {
	testCases := []struct {
		name    string
		actions func(t *testing.T, c *LRUCache, clk *clock)
	}{
		{
			name: "hit within ttl",
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("a", []byte("1"))
				clk.advance(59 * time.Second)

				v, ok := c.Get("a")
				require.True(t, ok)
				assert.Equal(t, []byte("1"), v)
			},
		},
		{
			name: "miss once expired",
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("a", []byte("1"))
				clk.advance(time.Minute)

				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Zero(t, c.Len())
				assert.Equal(t, uint64(1), c.Stats().Expired)
			},
		},
		{
			name: "least recently read is evicted",
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				_, _ = c.Get("a")
				c.Set("c", []byte("3"))

				_, ok := c.Get("b")
				assert.False(t, ok, "b was read least recently")
				_, ok = c.Get("a")
				assert.True(t, ok)
				_, ok = c.Get("c")
				assert.True(t, ok)
				assert.Equal(t, uint64(1), c.Stats().Evictions)
			},
		},
		{
			name: "overwrite refreshes deadline",
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("a", []byte("1"))
				clk.advance(40 * time.Second)
				c.Set("a", []byte("2"))
				clk.advance(40 * time.Second)

				v, ok := c.Get("a")
				require.True(t, ok)
				assert.Equal(t, []byte("2"), v)
				assert.Equal(t, 1, c.Len())
			},
		},
		{
			name: "delete",
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Delete("a")
				c.Delete("missing")

				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Equal(t, 1, c.Len())
			},
		},
		{
			name: "sweep drops only expired",
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("old", []byte("1"))
				clk.advance(30 * time.Second)
				c.Set("fresh", []byte("2"))
				clk.advance(30 * time.Second)

				assert.Equal(t, 1, c.sweep())
				_, ok := c.Get("fresh")
				assert.True(t, ok)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, clk := newTestCache(2, time.Minute)
			tc.actions(t, c, clk)
		})
	}
}

func TestLRUCache_Stats(t *testing.T) {
	c, _ := newTestCache(4, time.Minute)
	c.Set("a", []byte("1"))
	_, _ = c.Get("a")
	_, _ = c.Get("a")
	_, _ = c.Get("b")

	assert.Equal(t, Stats{Hits: 2, Misses: 1}, c.Stats())
}

func TestLRUCache_StartSweeps(t *testing.T) {
	clk := &clock{t: time.Now()}
	c := NewLRUCache(4, time.Second, WithClock(clk.now), WithSweepInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Start(ctx))

	c.Set("a", []byte("1"))
	clk.advance(2 * time.Second)

	assert.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestLRUCache_Collect(t *testing.T) {
	c, clk := newTestCache(1, time.Minute)
	c.Set("a", []byte("1"))
	_, _ = c.Get("a")
	c.Set("b", []byte("2"))
	_, _ = c.Get("a")
	clk.advance(time.Minute)
	_, _ = c.Get("b")

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))
	families, err := reg.Gather()
	require.NoError(t, err)

	got := make(map[string]float64, len(families))
	for _, mf := range families {
		m := mf.GetMetric()[0]
		if m.GetGauge() != nil {
			got[mf.GetName()] = m.GetGauge().GetValue()
		} else {
			got[mf.GetName()] = m.GetCounter().GetValue()
		}
	}

	assert.Equal(t, map[string]float64{
		"order_service_cache_lru_entries":         0,
		"order_service_cache_lru_hits_total":      1,
		"order_service_cache_lru_misses_total":    2,
		"order_service_cache_lru_evictions_total": 1,
		"order_service_cache_lru_expired_total":   1,
	}, got)
}
