package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const standingTTL = 15 * time.Minute

// StandingCache caches account-standing flags so guards and hot write paths
// do not hit the user collection on every request.
// Key format: standing:<user_id>, value "1" (good) or "0".
type StandingCache struct {
	client *redis.Client
}

// NewStandingCache creates a StandingCache wrapping the given Redis client.
func NewStandingCache(client *redis.Client) *StandingCache {
	return &StandingCache{client: client}
}

// Get returns the cached standing. ok=false means no cached value; the caller
// recomputes from the store.
func (c *StandingCache) Get(ctx context.Context, userID string) (good bool, ok bool, err error) {
	val, err := c.client.Get(ctx, c.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("standing get: %w", err)
	}
	return val == "1", true, nil
}

// Set records the standing flag (expires after standingTTL).
func (c *StandingCache) Set(ctx context.Context, userID string, good bool) error {
	val := "0"
	if good {
		val = "1"
	}
	return c.client.Set(ctx, c.key(userID), val, standingTTL).Err()
}

// Invalidate drops the cached flag. Called whenever a moderation action
// changes an account's ban, suspension or client status.
func (c *StandingCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *StandingCache) key(userID string) string {
	return "standing:" + userID
}
