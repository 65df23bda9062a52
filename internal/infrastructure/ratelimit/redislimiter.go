package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is the multi-instance backend: a fixed-window INCR
// counter per key plus a block marker key, all shared through Redis.
type RedisLimiter struct {
	client *redis.Client
	cfg    Config
}

func NewRedisLimiter(client *redis.Client, cfg Config) *RedisLimiter {
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 60
	}
	if cfg.BlockDuration <= 0 {
		cfg.BlockDuration = 5 * time.Minute
	}
	return &RedisLimiter{client: client, cfg: cfg}
}

// Allow implements Limiter.
func (l *RedisLimiter) Allow(key string) (bool, error) {
	ctx := context.Background()

	blockKey := fmt.Sprintf("ratelimit:block:%s", key)
	blocked, err := l.client.Exists(ctx, blockKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check block key: %w", err)
	}
	if blocked > 0 {
		return false, nil
	}

	bucket := time.Now().Unix() / int64(slidingWindow.Seconds())
	countKey := fmt.Sprintf("ratelimit:ip:%s:%d", key, bucket)

	count, err := l.client.Incr(ctx, countKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment counter: %w", err)
	}
	if count == 1 {
		l.client.Expire(ctx, countKey, slidingWindow+time.Second)
	}

	if count > int64(l.cfg.RequestsPerMinute+l.cfg.Burst) {
		if err := l.client.Set(ctx, blockKey, 1, l.cfg.BlockDuration).Err(); err != nil {
			return false, fmt.Errorf("failed to set block key: %w", err)
		}
		return false, nil
	}
	if count > int64(l.cfg.RequestsPerMinute) {
		return false, nil
	}

	return true, nil
}
