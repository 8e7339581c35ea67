package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisChannel is the Redis pub/sub channel events are mirrored to
// when none is configured.
const DefaultRedisChannel = "taskboard:events"

// RedisMirror forwards every bus event to a Redis pub/sub channel, so
// dashboards outside the process can follow the board without talking to
// the taskboard server directly.
type RedisMirror struct {
	client  *redis.Client
	channel string
}

// NewRedisMirror connects a mirror to the Redis instance at addr
// (host:port). An empty channel selects [DefaultRedisChannel].
func NewRedisMirror(addr, channel string) *RedisMirror {
	if channel == "" {
		channel = DefaultRedisChannel
	}
	return &RedisMirror{
		client:  redis.NewClient(&redis.Options{Addr: addr}),
		channel: channel,
	}
}

// Ping verifies the Redis connection.
func (m *RedisMirror) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Run subscribes to the bus and forwards events until ctx is cancelled or
// the bus closes. Forwarding failures abort the mirror; the caller decides
// whether to restart it.
func (m *RedisMirror) Run(ctx context.Context, bus *Bus) error {
	events, err := bus.Subscribe(ctx)
	if err != nil {
		return err
	}

	for e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", e.ID, err)
		}
		if err := m.client.Publish(ctx, m.channel, payload).Err(); err != nil {
			return fmt.Errorf("mirror event %s to %s: %w", e.ID, m.channel, err)
		}
	}
	return ctx.Err()
}

// Close releases the Redis connection.
func (m *RedisMirror) Close() error {
	return m.client.Close()
}
