// Package ratelimit implements fixed-window rate limiting keyed by opaque
// string identifiers, used to protect the form submission endpoints from
// abuse.
//
// A fixed window counts requests per key within discrete, non-overlapping
// time windows: the first observation of a key opens a window and each
// subsequent observation within it increments a counter. Once the counter
// reaches the configured limit, further requests are denied without mutating
// the record; when the window elapses, the record is replaced, not merged.
//
// Storage is pluggable behind the Store interface. MemoryStore is the
// default: single-process and non-persistent, which means a restart resets
// the limit and multiple instances fragment it. That boundary is deliberate;
// multi-instance deployments substitute RedisStore behind the same interface
// for a shared counter.
package ratelimit
