package audit

import (
	"context"
	"log/slog"
	"sync"
)

// Storage persists audit events.
type Storage interface {
	Store(ctx context.Context, event Event) error
}

// SlogStorage emits audit events to a structured logger, the
// operator-visible sink for single-process deployments. Downstream shipping
// (log pipeline, SIEM) is outside this subsystem.
type SlogStorage struct {
	log *slog.Logger
}

// NewSlogStorage creates a Storage writing to log. A nil log uses
// slog.Default().
func NewSlogStorage(log *slog.Logger) *SlogStorage {
	if log == nil {
		log = slog.Default()
	}
	return &SlogStorage{log: log}
}

// Store implements Storage. It never returns an error: slog handlers
// swallow write failures, which is the behavior the audit write path wants.
func (s *SlogStorage) Store(ctx context.Context, event Event) error {
	s.log.LogAttrs(ctx, slog.LevelInfo, "audit",
		slog.String("id", event.ID),
		slog.String("action", event.Action),
		slog.String("ip", event.IP),
		slog.String("user_agent", event.UserAgent),
		slog.Any("details", event.Details),
		slog.Time("created_at", event.CreatedAt),
	)
	return nil
}

// MemoryStorage collects events in memory. Intended for tests.
type MemoryStorage struct {
	mu     sync.Mutex
	events []Event
	err    error
}

// NewMemoryStorage creates an empty in-memory collector.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// FailWith makes every subsequent Store call return err.
func (s *MemoryStorage) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Store implements Storage.
func (s *MemoryStorage) Store(ctx context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of the collected events.
func (s *MemoryStorage) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// ByAction returns collected events with the given action.
func (s *MemoryStorage) ByAction(action string) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Event
	for _, e := range s.events {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}
