// Package sanitizer provides string sanitization helpers applied to
// user-submitted form fields before validation and rendering.
//
// Sanitization is distinct from output escaping: these functions remove or
// bound input, while format-specific escaping (HTML entities in notification
// emails) happens at render time.
//
// All functions are pure and total: they never fail, and an empty input
// yields an empty output.
package sanitizer
