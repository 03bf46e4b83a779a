// Package email defines the outbound mail boundary for notification
// delivery.
//
// The rest of the application only knows the EmailSender interface; which
// transport actually delivers is a wiring decision:
//
//   - SMTPSender sends through a configured SMTP relay.
//   - PostmarkSender sends through Postmark's transactional API.
//   - DevSender writes emails to disk for local development.
//
// Rendering of notification bodies happens upstream (modules/leads); this
// package moves already-rendered content.
package email
