package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jobmaroc/backend/internal/core/ports"
)

const statsTTL = 5 * time.Minute

// StatsCache caches the dashboard aggregates in Redis. A cache failure is
// treated as a miss so the dashboard keeps working without Redis.
type StatsCache struct {
	client *redis.Client
	log    zerolog.Logger
}

var _ ports.StatsCache = (*StatsCache)(nil)

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client, log zerolog.Logger) *StatsCache {
	return &StatsCache{client: client, log: log}
}

func (c *StatsCache) Get(ctx context.Context, key string) ([]ports.StatsBucket, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("stats cache read failed")
		}
		return nil, false
	}

	var buckets []ports.StatsBucket
	if err := json.Unmarshal(raw, &buckets); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("stats cache entry corrupt")
		return nil, false
	}
	return buckets, true
}

func (c *StatsCache) Set(ctx context.Context, key string, buckets []ports.StatsBucket) {
	raw, err := json.Marshal(buckets)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("stats cache encode failed")
		return
	}
	if err := c.client.Set(ctx, key, raw, statsTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("stats cache write failed")
	}
}
