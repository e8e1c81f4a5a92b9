package notify

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// SendGuard records that a confirmation went out so task retries do not send
// it twice.
type SendGuard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// RedisSendGuard implements SendGuard with SETNX.
type RedisSendGuard struct {
	Client *redis.Client
}

// Acquire claims key for ttl. Without a client every claim succeeds.
func (r RedisSendGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if r.Client == nil {
		return true, nil
	}
	return r.Client.SetNX(ctx, key, "1", ttl).Result()
}

// Release drops the claim on key.
func (r RedisSendGuard) Release(ctx context.Context, key string) error {
	if r.Client == nil {
		return nil
	}
	return r.Client.Del(ctx, key).Err()
}
