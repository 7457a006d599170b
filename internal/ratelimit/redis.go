package ratelimit

import (
	"context"
	"fmt"

	"github.com/art-nursing/backend/internal/cache"
)

// RedisWindow is a fixed-window limiter backed by redis, so the limit holds
// across instances. The window is anchored at the first request for the key:
// INCR creates the counter and EXPIRE starts the interval; once the key
// expires the next request starts a fresh window.
type RedisWindow struct {
	cache *cache.Redis
	cfg   Config
}

// NewRedisWindow creates a redis-backed fixed-window limiter
func NewRedisWindow(c *cache.Redis, cfg Config) *RedisWindow {
	return &RedisWindow{cache: c, cfg: cfg}
}

// Allow implements Limiter
func (rw *RedisWindow) Allow(ctx context.Context, key string) (bool, error) {
	count, err := rw.cache.IncrWithExpire(ctx, "ratelimit:"+key, rw.cfg.Interval)
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	return count <= int64(rw.cfg.Limit), nil
}
