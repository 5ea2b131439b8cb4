package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const limiterKeyPrefix = "ratelimit:contact:" // Sorted set per client key: ratelimit:contact:{client_key}

// RedisLimiter is the strict variant: a sliding window kept in a redis sorted
// set, trimmed, recorded and counted in one MULTI/EXEC round trip. Unlike the
// store-backed limiter it has no check-then-write race, at the cost of a
// redis dependency.
type RedisLimiter struct {
	client *redis.Client
	window time.Duration
	max    int
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, window time.Duration, max int) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		window: window,
		max:    max,
		now:    time.Now,
	}
}

// Allow trims, records and counts in one pipeline. The count includes the
// attempt just recorded, so two concurrent callers can never both read a
// pre-record count. Denied attempts stay in the window and keep it loaded.
func (l *RedisLimiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	now := l.now()
	key := limiterKeyPrefix + clientKey
	cutoff := now.Add(-l.window).UnixNano()

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", cutoff))
	// Unique member per attempt; a shared timestamp must not collapse two
	// concurrent attempts into one set element.
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.NewString(),
	})
	card := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}

	return card.Val() <= int64(l.max), nil
}
