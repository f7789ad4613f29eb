package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is the shared order cache. It has the same method set as the
// in-process LRU so the two are interchangeable; failures are logged and
// treated as misses.
type Cache struct {
	rdb    *redis.Client
	logger *slog.Logger
	prefix string
	ttl    time.Duration
}

func NewCache(logger *slog.Logger, rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		rdb:    rdb,
		logger: logger.With(slog.String("cache", "redis")),
		prefix: "order:",
		ttl:    ttl,
	}
}

func (c *Cache) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("failed to read cache", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	return data, true
}

func (c *Cache) Set(key string, value []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := c.rdb.Set(ctx, c.prefix+key, value, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to write cache", slog.String("key", key), slog.Any("error", err))
	}
}

func (c *Cache) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := c.rdb.Del(ctx, c.prefix+key).Err(); err != nil {
		c.logger.Warn("failed to evict cache", slog.String("key", key), slog.Any("error", err))
	}
}
