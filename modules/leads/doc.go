// Package leads implements the lead-generation form endpoints of the
// daycare's marketing site: the general contact form and the inscription
// request form.
//
// Every submission runs the same admission pipeline:
//
//	IP rate limit -> JSON bind -> sanitize -> validate -> email rate limit
//	-> audit -> mail config check -> render notification -> send
//
// The IP-scoped limit runs before the payload is parsed (cheapest rejection
// first); the email-scoped limit runs only after validation, because the
// claimed identity is only worth counting once it is syntactically valid.
// The asymmetry is intentional: invalid submissions consume IP quota but
// never email quota.
package leads
