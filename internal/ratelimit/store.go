// Package ratelimit counts requests per client key against a fixed budget.
package ratelimit

import (
	"context"
	"time"
)

// Result describes the state of a key after a request was counted.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Store counts one request for key and reports whether it fits the budget.
type Store interface {
	Take(ctx context.Context, key string) (Result, error)
}

func remaining(limit, used int) int {
	if used >= limit {
		return 0
	}
	return limit - used
}
