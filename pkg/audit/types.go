package audit

import (
	"fmt"
	"time"
)

// Well-known event actions.
const (
	ActionContactSubmitted     = "contact.submitted"
	ActionInscriptionSubmitted = "inscription.submitted"
	ActionRateLimitExceeded    = "ratelimit.exceeded"
)

// Rate-limit scopes recorded in event details.
const (
	ScopeIP    = "ip"
	ScopeEmail = "email"
)

// Event represents a single audit log entry. CreatedAt is assigned at log
// time, not by the caller, and an emitted event is never mutated.
type Event struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	IP        string         `json:"ip,omitempty"`
	UserAgent string         `json:"user_agent,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Validate checks if the event has all required fields.
func (e *Event) Validate() error {
	if e.Action == "" {
		return fmt.Errorf("%w: action is required", ErrEventValidation)
	}
	return nil
}

// EventOption applies configuration to an Event during creation.
type EventOption func(*Event)

// WithIP records the caller's network address.
func WithIP(ip string) EventOption {
	return func(e *Event) { e.IP = ip }
}

// WithUserAgent records the caller's user-agent string as received.
func WithUserAgent(ua string) EventOption {
	return func(e *Event) { e.UserAgent = ua }
}

// WithDetail adds one key to the event's detail mapping.
func WithDetail(key string, value any) EventOption {
	return func(e *Event) {
		if e.Details == nil {
			e.Details = make(map[string]any)
		}
		e.Details[key] = value
	}
}

// WithDetails merges a detail mapping into the event.
func WithDetails(details map[string]any) EventOption {
	return func(e *Event) {
		if len(details) == 0 {
			return
		}
		if e.Details == nil {
			e.Details = make(map[string]any, len(details))
		}
		for k, v := range details {
			e.Details[k] = v
		}
	}
}
