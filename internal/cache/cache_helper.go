package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheNotAvailable = errors.New("cache not available")
	ErrCacheNotFound     = errors.New("cache key not found")
)

// CacheHelper provides common caching operations backed by Redis. All
// methods degrade gracefully when no client is configured.
type CacheHelper struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewCacheHelper(client *redis.Client, prefix string, ttl time.Duration) *CacheHelper {
	return &CacheHelper{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Readiness results are cheap to recompute; a short TTL keeps the dashboard
// fresh after direct database edits.
const statsTTL = 5 * time.Minute

// NewStatsCache returns the cache used for per-user readiness aggregates.
func NewStatsCache(client *redis.Client) *CacheHelper {
	return NewCacheHelper(client, "readiness:", statsTTL)
}

func (c *CacheHelper) key(key string) string {
	return fmt.Sprintf("%s%s", c.prefix, key)
}

// Get retrieves and unmarshals data from cache.
func (c *CacheHelper) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return ErrCacheNotAvailable
	}

	data, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheNotFound
		}
		return fmt.Errorf("cache get error: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}

	return nil
}

// Set marshals and stores data with the helper's TTL.
func (c *CacheHelper) Set(ctx context.Context, key string, value interface{}) error {
	if c.client == nil {
		return ErrCacheNotAvailable
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set error: %w", err)
	}

	return nil
}

// Delete removes keys from the cache.
func (c *CacheHelper) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = c.key(k)
	}

	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("cache delete error: %w", err)
	}

	return nil
}

// InvalidatePattern deletes all keys matching the prefixed pattern.
func (c *CacheHelper) InvalidatePattern(ctx context.Context, pattern string) error {
	if c.client == nil {
		return nil
	}

	keys, err := c.client.Keys(ctx, c.key(pattern)).Result()
	if err != nil {
		return fmt.Errorf("cache scan error: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate error: %w", err)
	}

	return nil
}

// HealthCheck pings the backing Redis instance.
func (c *CacheHelper) HealthCheck(ctx context.Context) error {
	if c.client == nil {
		return ErrCacheNotAvailable
	}
	return c.client.Ping(ctx).Err()
}
