package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements an in-memory fixed-window store.
//
// State lives in the process: restarting resets all limits and running
// multiple instances gives each its own quota. Records are swept
// periodically so memory stays bounded by the set of keys active within the
// last window plus one sweep interval.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*record

	sweepInterval time.Duration
	stopSweep     chan struct{}
	sweepOnce     sync.Once
}

type record struct {
	count   int64
	resetAt time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithSweepInterval sets how often elapsed records are removed.
func WithSweepInterval(interval time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		if interval > 0 {
			s.sweepInterval = interval
		}
	}
}

// NewMemoryStore creates a new in-memory store with automatic sweeping of
// elapsed windows.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		records:       make(map[string]*record),
		sweepInterval: time.Minute,
		stopSweep:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	go s.sweepLoop()

	return s
}

// Take implements Store. The check-and-increment runs under the store mutex
// so concurrent requests for the same key cannot both observe count < limit
// and both be admitted.
func (s *MemoryStore) Take(ctx context.Context, key string, limit int, window time.Duration) (int64, time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	rec, exists := s.records[key]

	// First observation, or the stored window has elapsed: replace, not merge.
	if !exists || now.After(rec.resetAt) {
		rec = &record{count: 1, resetAt: now.Add(window)}
		s.records[key] = rec
		return rec.count, rec.resetAt, true, nil
	}

	if rec.count >= int64(limit) {
		return rec.count, rec.resetAt, false, nil
	}

	rec.count++
	return rec.count, rec.resetAt, true, nil
}

// Reset removes the given key from the store.
func (s *MemoryStore) Reset(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	return nil
}

// sweepLoop runs periodically to remove elapsed records, whether or not they
// are ever queried again.
func (s *MemoryStore) sweepLoop() {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopSweep:
			return
		}
	}
}

func (s *MemoryStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, rec := range s.records {
		if now.After(rec.resetAt) {
			delete(s.records, key)
		}
	}
}

// Close stops the sweep goroutine.
func (s *MemoryStore) Close() error {
	s.sweepOnce.Do(func() {
		close(s.stopSweep)
	})
	return nil
}
