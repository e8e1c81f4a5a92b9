package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// cacheVersion is bumped whenever the cached payload shape changes.
const cacheVersion = "v1"

// Cache keeps rendered catalog payloads in Redis. A nil Cache, or one built
// without a client or TTL, is a permanent miss.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache returns a Cache over rdb. A non-positive ttl disables it.
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) enabled() bool {
	return c != nil && c.rdb != nil && c.ttl > 0
}

func (c *Cache) key(k string) string { return cacheVersion + ":" + k }

// Load decodes the entry under k into dst. A missing entry is not an error.
func (c *Cache) Load(ctx context.Context, k string, dst any) (bool, error) {
	if !c.enabled() || k == "" {
		return false, nil
	}
	raw, err := c.rdb.Get(ctx, c.key(k)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", k, err)
	}
	return true, nil
}

// Store writes v under k for the cache TTL.
func (c *Cache) Store(ctx context.Context, k string, v any) error {
	if !c.enabled() || k == "" {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", k, err)
	}
	return c.rdb.Set(ctx, c.key(k), raw, c.ttl).Err()
}
