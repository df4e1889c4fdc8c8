package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrScript increments the window counter, starts the expiry on the first
// hit and returns the count with the remaining ttl in milliseconds.
var incrScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`)

// RedisStore is a fixed-window counter shared by every instance behind a load balancer.
type RedisStore struct {
	client redis.Scripter
	limit  int
	period time.Duration
	prefix string
	now    func() time.Time
}

// NewRedisStore allows limit requests per key in each period, counting in client.
func NewRedisStore(client redis.Scripter, limit int, period time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		limit:  limit,
		period: period,
		prefix: "ratelimit:",
		now:    time.Now,
	}
}

// Take implements Store.
func (s *RedisStore) Take(ctx context.Context, key string) (Result, error) {
	values, err := incrScript.Run(ctx, s.client, []string{s.prefix + key}, s.period.Milliseconds()).Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("failed to count request: %w", err)
	}
	if len(values) != 2 {
		return Result{}, fmt.Errorf("unexpected rate limit reply: %v", values)
	}

	count, ttl := int(values[0]), time.Duration(values[1])*time.Millisecond
	if ttl < 0 {
		ttl = s.period
	}

	return Result{
		Allowed:   count <= s.limit,
		Limit:     s.limit,
		Remaining: remaining(s.limit, count),
		ResetAt:   s.now().Add(ttl),
	}, nil
}
