package email

import "fmt"

// Config holds outbound mail configuration.
//
// SMTP credentials and the recipient address are validated lazily via
// Validate rather than marked required at parse time, so the service can
// boot in development without a configured relay and return a server error
// on submission instead.
type Config struct {
	SMTPHost     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASS"`

	// SenderEmail is the From address; falls back to SMTPUsername when empty.
	SenderEmail string `env:"SMTP_FROM"`

	// RecipientEmail is where lead notifications are delivered.
	RecipientEmail string `env:"CONTACT_EMAIL"`

	// PostmarkServerToken enables the Postmark transport as an alternative
	// to SMTP.
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
}

// Sender returns the effective From address.
func (c Config) Sender() string {
	if c.SenderEmail != "" {
		return c.SenderEmail
	}
	return c.SMTPUsername
}

// Validate reports whether the configuration is complete enough to deliver
// mail. Handlers call this before rendering so a misconfigured relay
// short-circuits to a server error without attempting delivery.
func (c Config) Validate() error {
	if c.PostmarkServerToken == "" {
		if c.SMTPUsername == "" {
			return fmt.Errorf("%w: SMTP username is missing", ErrInvalidConfig)
		}
		if c.SMTPPassword == "" {
			return fmt.Errorf("%w: SMTP password is missing", ErrInvalidConfig)
		}
	}
	if c.RecipientEmail == "" {
		return fmt.Errorf("%w: recipient address is missing", ErrInvalidConfig)
	}
	if sender := c.Sender(); !emailRegex.MatchString(sender) {
		return fmt.Errorf("%w: sender %q is not a valid email address", ErrInvalidConfig, sender)
	}
	return nil
}
