package ratelimit

import (
	"context"
	"time"
)

// Result contains the result of a rate limit check.
type Result struct {
	// Allowed indicates whether the request is allowed.
	Allowed bool

	// Limit is the maximum number of requests allowed in the window.
	Limit int

	// Remaining is the number of requests remaining in the current window.
	Remaining int

	// ResetAt is the time when the rate limit window resets.
	ResetAt time.Time
}

// RetryAfter returns how long to wait before the next request is allowed.
// Returns 0 if the current request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Limiter defines the interface for rate limiting implementations.
type Limiter interface {
	// Allow checks if a single request is allowed for the given key.
	// If allowed, it consumes one slot in the key's current window.
	Allow(ctx context.Context, key string) (*Result, error)

	// Reset clears the rate limit state for the given key.
	Reset(ctx context.Context, key string) error
}

// Store defines the interface for rate limit storage backends.
type Store interface {
	// Take atomically performs the fixed-window check-and-increment for key:
	// it opens a fresh window when none exists or the stored one has elapsed,
	// increments the counter while it is below limit, and denies without
	// mutating the record otherwise. It returns the current count, the
	// absolute time the window resets, and whether the request was admitted.
	Take(ctx context.Context, key string, limit int, window time.Duration) (count int64, resetAt time.Time, allowed bool, err error)

	// Reset removes the given key from the store.
	Reset(ctx context.Context, key string) error

	// Close releases store resources.
	Close() error
}
