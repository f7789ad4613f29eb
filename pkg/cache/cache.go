package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultSweepEvery = 2 * time.Minute

// Stats counts lookups since the cache was created.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Expired   uint64
}

type item struct {
	key      string
	data     []byte
	deadline time.Time
}

// LRUCache keeps serialized order views in process. Entries live for ttl and
// the least recently read one is dropped once capacity is exceeded.
type LRUCache struct {
	mu    sync.Mutex
	order *list.List
	index map[string]*list.Element
	stats Stats

	capacity   int
	ttl        time.Duration
	sweepEvery time.Duration
	now        func() time.Time
}

type Option func(*LRUCache)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *LRUCache) { c.now = now }
}

func WithSweepInterval(d time.Duration) Option {
	return func(c *LRUCache) { c.sweepEvery = d }
}

func NewLRUCache(capacity int, ttl time.Duration, opts ...Option) *LRUCache {
	if capacity < 1 {
		capacity = 1
	}
	c := &LRUCache{
		order:      list.New(),
		index:      make(map[string]*list.Element, capacity),
		capacity:   capacity,
		ttl:        ttl,
		sweepEvery: defaultSweepEvery,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}

	it := el.Value.(*item)
	if !c.now().Before(it.deadline) {
		c.drop(el)
		c.stats.Expired++
		c.stats.Misses++
		return nil, false
	}

	c.order.MoveToFront(el)
	c.stats.Hits++
	return it.data, true
}

func (c *LRUCache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	deadline := c.now().Add(c.ttl)
	if el, ok := c.index[key]; ok {
		it := el.Value.(*item)
		it.data, it.deadline = data, deadline
		c.order.MoveToFront(el)
		return
	}

	c.index[key] = c.order.PushFront(&item{key: key, data: data, deadline: deadline})
	for c.order.Len() > c.capacity {
		c.drop(c.order.Back())
		c.stats.Evictions++
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		c.drop(el)
	}
}

func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *LRUCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Start runs the expiry sweep until ctx is done.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(c.sweepEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.sweep()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

// sweep removes expired entries and reports how many went.
func (c *LRUCache) sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if !now.Before(el.Value.(*item).deadline) {
			c.drop(el)
			removed++
		}
		el = prev
	}
	c.stats.Expired += uint64(removed)
	return removed
}

var (
	entriesDesc = prometheus.NewDesc("order_service_cache_lru_entries", "Entries held by the in-process order cache", nil, nil)
	hitsDesc    = prometheus.NewDesc("order_service_cache_lru_hits_total", "In-process cache hits", nil, nil)
	missesDesc  = prometheus.NewDesc("order_service_cache_lru_misses_total", "In-process cache misses", nil, nil)
	evictedDesc = prometheus.NewDesc("order_service_cache_lru_evictions_total", "Entries dropped over capacity", nil, nil)
	expiredDesc = prometheus.NewDesc("order_service_cache_lru_expired_total", "Entries dropped after ttl", nil, nil)
)

func (c *LRUCache) Describe(ch chan<- *prometheus.Desc) {
	ch <- entriesDesc
	ch <- hitsDesc
	ch <- missesDesc
	ch <- evictedDesc
	ch <- expiredDesc
}

// Collect exports Len and Stats as metrics.
func (c *LRUCache) Collect(ch chan<- prometheus.Metric) {
	stats := c.Stats()
	ch <- prometheus.MustNewConstMetric(entriesDesc, prometheus.GaugeValue, float64(c.Len()))
	ch <- prometheus.MustNewConstMetric(hitsDesc, prometheus.CounterValue, float64(stats.Hits))
	ch <- prometheus.MustNewConstMetric(missesDesc, prometheus.CounterValue, float64(stats.Misses))
	ch <- prometheus.MustNewConstMetric(evictedDesc, prometheus.CounterValue, float64(stats.Evictions))
	ch <- prometheus.MustNewConstMetric(expiredDesc, prometheus.CounterValue, float64(stats.Expired))
}

func (c *LRUCache) drop(el *list.Element) {
	c.order.Remove(el)
	delete(c.index, el.Value.(*item).key)
}
