package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count   int
	resetAt time.Time
}

// MemoryStore is a fixed-window counter kept in process memory.
type MemoryStore struct {
	limit  int
	period time.Duration
	now    func() time.Time

	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
}

// NewMemoryStore allows limit requests per key in each period.
func NewMemoryStore(limit int, period time.Duration) *MemoryStore {
	return &MemoryStore{
		limit:   limit,
		period:  period,
		now:     time.Now,
		windows: make(map[string]*window),
	}
}

// Take implements Store.
func (s *MemoryStore) Take(_ context.Context, key string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(s.period)}
		s.windows[key] = w
	}
	w.count++

	return Result{
		Allowed:   w.count <= s.limit,
		Limit:     s.limit,
		Remaining: remaining(s.limit, w.count),
		ResetAt:   w.resetAt,
	}, nil
}

// sweep drops expired windows at most once per period.
func (s *MemoryStore) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < s.period {
		return
	}
	s.lastSweep = now
	for key, w := range s.windows {
		if !now.Before(w.resetAt) {
			delete(s.windows, key)
		}
	}
}
