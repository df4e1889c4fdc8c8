package ratelimit

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/yukikurage/user-hobbies-api/internal/config"
)

// Open builds the store selected by RATE_LIMIT_STORE. The returned close
// function releases any connection the store holds and is never nil.
func Open(ctx context.Context, cfg *config.Config) (Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.RateLimitStore {
	case config.RateLimitStoreMemory:
		return NewMemoryStore(cfg.RateLimitMax, cfg.RateLimitWindow), noop, nil
	case config.RateLimitStoreTokenBucket:
		return NewTokenBucketStore(cfg.RateLimitMax, cfg.RateLimitWindow), noop, nil
	case config.RateLimitStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return NewRedisStore(client, cfg.RateLimitMax, cfg.RateLimitWindow), client.Close, nil
	default:
		return nil, noop, fmt.Errorf("unsupported rate limit store %q", cfg.RateLimitStore)
	}
}
