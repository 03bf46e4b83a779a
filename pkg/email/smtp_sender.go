package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
)

type smtpSender struct {
	config Config
}

// NewSMTPSender creates an SMTP-backed email sender. Credentials are checked
// at send time, not here, so the service can boot without a configured relay.
func NewSMTPSender(cfg Config) (EmailSender, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("%w: SMTP host is missing", ErrInvalidConfig)
	}
	if cfg.SMTPPort <= 0 || cfg.SMTPPort > 65535 {
		return nil, fmt.Errorf("%w: SMTP port %d is out of range", ErrInvalidConfig, cfg.SMTPPort)
	}

	return &smtpSender{config: cfg}, nil
}

// SendEmail implements EmailSender over an SMTP relay. A new connection is
// dialed per message; submission volume here is a handful of lead forms per
// hour, not a queue worth pooling for.
func (s *smtpSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := s.config.Validate(); err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(s.config.Sender()); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if err := msg.To(params.SendTo); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if params.ReplyTo != "" {
		if err := msg.ReplyTo(params.ReplyTo); err != nil {
			return errors.Join(ErrFailedToSendEmail, err)
		}
	}
	msg.Subject(params.Subject)
	msg.SetBodyString(mail.TypeTextPlain, params.BodyText)
	if params.BodyHTML != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, params.BodyHTML)
	}

	opts := []mail.Option{
		mail.WithPort(s.config.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.config.SMTPUsername),
		mail.WithPassword(s.config.SMTPPassword),
	}
	if s.config.SMTPPort == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(s.config.SMTPHost, opts...)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}
