// Package audit emits structured, timestamped events for form submissions
// and rate-limit rejections.
//
// Events are write-only from this subsystem's point of view: they are handed
// to a Storage sink (process log by default) and never read back. The write
// path is best-effort - a failing sink must never fail the request that
// produced the event, so callers log and drop storage errors.
package audit
