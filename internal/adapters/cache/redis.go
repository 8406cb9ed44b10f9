// Package cache provides the redis-backed catalog cache. When no redis server
// is reachable the application falls back to Noop and every read goes to the
// database.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis stores JSON-encoded values under string keys with a TTL.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to the given address and pings it with a short timeout.
// It returns nil if the server is unreachable; callers should fall back to Noop.
func NewRedis(addr, password string, db int) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return &Redis{Client: client}
}

// GetJSON reads key and unmarshals it into dest. The bool reports a cache hit.
func (c *Redis) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals value and stores it under key with the given TTL.
func (c *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, raw, ttl).Err()
}

// Delete removes the given keys.
func (c *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.Client.Del(ctx, keys...).Err()
}

// Noop is a cache that never hits. It is used when redis is not configured.
type Noop struct{}

func (Noop) GetJSON(ctx context.Context, key string, dest any) (bool, error) { return false, nil }

func (Noop) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error { return nil }

func (Noop) Delete(ctx context.Context, keys ...string) error { return nil }
