package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// TokenBucketStore refills each key continuously instead of resetting at
// window boundaries. The bucket holds limit tokens and refills limit per period.
type TokenBucketStore struct {
	limit  int
	period time.Duration
	every  rate.Limit
	now    func() time.Time

	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	lastSweep time.Time
}

// NewTokenBucketStore creates a store with a burst of limit refilled over period.
func NewTokenBucketStore(limit int, period time.Duration) *TokenBucketStore {
	return &TokenBucketStore{
		limit:    limit,
		period:   period,
		every:    rate.Every(period / time.Duration(limit)),
		now:      time.Now,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Take implements Store.
func (s *TokenBucketStore) Take(_ context.Context, key string) (Result, error) {
	now := s.now()

	s.mu.Lock()
	s.sweep(now)
	limiter, ok := s.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(s.every, s.limit)
		s.limiters[key] = limiter
	}
	s.mu.Unlock()

	allowed := limiter.AllowN(now, 1)
	tokens := limiter.TokensAt(now)
	left := int(tokens)
	if left < 0 {
		left = 0
	}

	// Time until the bucket is full again.
	missing := float64(s.limit) - tokens
	refill := time.Duration(missing / float64(s.every) * float64(time.Second))

	return Result{
		Allowed:   allowed,
		Limit:     s.limit,
		Remaining: left,
		ResetAt:   now.Add(refill),
	}, nil
}

// sweep drops full buckets at most once per period. A full bucket behaves
// like a new one, so dropping it changes no result.
func (s *TokenBucketStore) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < s.period {
		return
	}
	s.lastSweep = now
	for key, limiter := range s.limiters {
		if limiter.TokensAt(now) >= float64(s.limit) {
			delete(s.limiters, key)
		}
	}
}
