package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/ims-backend/internal/stats"
)

// ErrMiss is returned when no cached snapshot exists.
var ErrMiss = errors.New("stats cache miss")

const statsKey = "dashboard:stats"

// StatsCache keeps the dashboard snapshot in redis for a short TTL so a busy
// dashboard does not re-run the aggregation queries on every refresh.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatsCache(rdb *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{rdb: rdb, ttl: ttl}
}

func (c *StatsCache) Get(ctx context.Context) (stats.Snapshot, error) {
	var snap stats.Snapshot

	data, err := c.rdb.Get(ctx, statsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return snap, ErrMiss
	}
	if err != nil {
		return snap, err
	}

	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, err
	}
	return snap, nil
}

func (c *StatsCache) Set(ctx context.Context, snap stats.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, statsKey, data, c.ttl).Err()
}

// Invalidate drops the cached snapshot; called after product mutations so the
// dashboard never serves stats older than the TTL after a write burst.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, statsKey).Err()
}
