package stats

import (
	"context"
	"time"

	"github.com/mmdatafocus/finance_bot/config"
)

// DayCache caches metrics for fully elapsed days. Best-effort only: a miss
// or a failing backend must never fail the aggregation.
type DayCache interface {
	Get(ctx context.Context, key string) (DailyMetrics, bool)
	Set(ctx context.Context, key string, m DailyMetrics)
}

// RedisDayCache stores finalized day metrics as JSON objects through the
// shared nil-safe Redis helpers. With no Redis configured every call is a
// no-op, which reads as a permanent cache miss.
type RedisDayCache struct {
	TTL time.Duration
}

func (c *RedisDayCache) Get(ctx context.Context, key string) (DailyMetrics, bool) {
	var m DailyMetrics
	found, err := config.GetRedisObject(ctx, key, &m)
	if err != nil {
		config.LogError(config.GetLogger(), "stats/cache.go", "Get", "config.GetRedisObject", key, err)
		return DailyMetrics{}, false
	}
	return m, found
}

func (c *RedisDayCache) Set(ctx context.Context, key string, m DailyMetrics) {
	if err := config.SetRedisObject(ctx, key, m, c.TTL); err != nil {
		config.LogError(config.GetLogger(), "stats/cache.go", "Set", "config.SetRedisObject", key, err)
	}
}
