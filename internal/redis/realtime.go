package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Realtime publishes notification payloads on per-user channels that the
// websocket gateway relays to connected clients.
type Realtime struct {
	rdb      *redis.Client
	presence *Presence
}

func NewRealtime(rdb *redis.Client, presence *Presence) *Realtime {
	return &Realtime{rdb: rdb, presence: presence}
}

func Channel(userID uuid.UUID) string {
	return "notifications:" + userID.String()
}

// Push publishes payload to the user's channel. Offline users are skipped
// and reported with delivered=false.
func (r *Realtime) Push(ctx context.Context, userID uuid.UUID, payload []byte) (bool, error) {
	online, err := r.presence.IsOnline(ctx, userID)
	if err != nil {
		return false, err
	}
	if !online {
		return false, nil
	}

	if err := r.rdb.Publish(ctx, Channel(userID), payload).Err(); err != nil {
		return false, fmt.Errorf("failed to publish notification: %w", err)
	}
	return true, nil
}
