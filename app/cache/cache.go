package cache

import (
	"context"
	"encoding/json"
	"time"

	"gritline/global"

	"github.com/redis/go-redis/v9"
)

// Cache is a small read-through cache for the public content feeds. A nil
// *Cache (no redis configured) behaves as a permanent miss, so callers never
// branch on availability.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	if rdb == nil {
		return nil
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (c *Cache) Set(ctx context.Context, key string, val any) {
	if c == nil {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		global.Logger.Warn().Str("key", key).Err(err).Msg("cache set failed")
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		global.Logger.Warn().Strs("keys", keys).Err(err).Msg("cache invalidate failed")
	}
}
