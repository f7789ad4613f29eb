package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Presence records which users currently have a client connected. Entries
// expire unless the client keeps sending heartbeats.
type Presence struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPresence(rdb *redis.Client, ttl time.Duration) *Presence {
	return &Presence{rdb: rdb, ttl: ttl}
}

func presenceKey(userID uuid.UUID) string {
	return "presence:" + userID.String()
}

func (p *Presence) MarkOnline(ctx context.Context, userID uuid.UUID) error {
	if err := p.rdb.Set(ctx, presenceKey(userID), time.Now().UTC().Unix(), p.ttl).Err(); err != nil {
		return fmt.Errorf("failed to mark user online: %w", err)
	}
	return nil
}

func (p *Presence) MarkOffline(ctx context.Context, userID uuid.UUID) error {
	if err := p.rdb.Del(ctx, presenceKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to mark user offline: %w", err)
	}
	return nil
}

func (p *Presence) IsOnline(ctx context.Context, userID uuid.UUID) (bool, error) {
	err := p.rdb.Get(ctx, presenceKey(userID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check presence: %w", err)
	}
	return true, nil
}
