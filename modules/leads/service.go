package leads

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/garderie-etoiles/website/pkg/audit"
	"github.com/garderie-etoiles/website/pkg/email"
	"github.com/garderie-etoiles/website/pkg/ratelimit"
)

// Meta carries request metadata the handlers extract from the HTTP layer.
type Meta struct {
	IP        string
	UserAgent string
}

// Service runs the lead submission pipeline for both forms.
type Service struct {
	limiter ratelimit.Limiter
	audit   audit.Logger
	sender  email.EmailSender
	mailCfg email.Config
	log     *slog.Logger
}

// NewService wires the submission pipeline. All dependencies are required
// except the logger, which defaults to slog.Default().
func NewService(limiter ratelimit.Limiter, auditLog audit.Logger, sender email.EmailSender, mailCfg email.Config, log *slog.Logger) *Service {
	if limiter == nil {
		panic("leads: limiter is required")
	}
	if auditLog == nil {
		panic("leads: audit logger is required")
	}
	if sender == nil {
		panic("leads: email sender is required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		limiter: limiter,
		audit:   auditLog,
		sender:  sender,
		mailCfg: mailCfg,
		log:     log,
	}
}

// checkQuota runs one rate limit check. A store failure is logged and the
// request admitted, so a broken Redis does not take the forms down. The
// audit write on denial is best effort.
func (s *Service) checkQuota(ctx context.Context, key string, meta Meta, endpoint, scope, email string) error {
	res, err := s.limiter.Allow(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "rate limit check failed, admitting request",
			slog.String("key", key), slog.Any("error", err))
		return nil
	}
	if res.Allowed {
		return nil
	}

	opts := []audit.EventOption{
		audit.WithIP(meta.IP),
		audit.WithUserAgent(meta.UserAgent),
		audit.WithDetail("endpoint", endpoint),
		audit.WithDetail("scope", scope),
	}
	if email != "" {
		opts = append(opts, audit.WithDetail("email", email))
	}
	if err := s.audit.Log(ctx, audit.ActionRateLimitExceeded, opts...); err != nil {
		s.log.WarnContext(ctx, "audit write failed", slog.Any("error", err))
	}
	return ErrTooManyRequests
}

// CheckIPQuota enforces the per-IP submission quota for the given form.
// Handlers call it before reading the body so oversized or malformed
// payloads from a throttled client cost nothing.
func (s *Service) CheckIPQuota(ctx context.Context, form string, meta Meta) error {
	return s.checkQuota(ctx, ratelimit.Key(form+":ip", meta.IP), meta, form, audit.ScopeIP, "")
}

// SubmitContact processes a sanitized-on-entry contact form submission.
func (s *Service) SubmitContact(ctx context.Context, meta Meta, req *ContactRequest) error {
	req.Sanitize()
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.checkQuota(ctx, ratelimit.Key("contact:email", req.Email), meta, "contact", audit.ScopeEmail, req.Email); err != nil {
		return err
	}

	if err := s.audit.Log(ctx, audit.ActionContactSubmitted,
		audit.WithIP(meta.IP),
		audit.WithUserAgent(meta.UserAgent),
		audit.WithDetails(map[string]any{
			"email":   req.Email,
			"name":    req.Name,
			"service": req.Service,
		}),
	); err != nil {
		s.log.WarnContext(ctx, "audit write failed", slog.Any("error", err))
	}

	if err := s.mailCfg.Validate(); err != nil {
		s.log.ErrorContext(ctx, "mail configuration incomplete", slog.Any("error", err))
		return ErrMailNotConfigured
	}

	notif, err := ContactNotification(req)
	if err != nil {
		s.log.ErrorContext(ctx, "contact notification render failed", slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	if err := s.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   s.mailCfg.RecipientEmail,
		ReplyTo:  req.Email,
		Subject:  notif.Subject,
		BodyHTML: notif.HTML,
		BodyText: notif.Text,
		Tag:      "contact",
	}); err != nil {
		s.log.ErrorContext(ctx, "contact notification delivery failed", slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	s.log.InfoContext(ctx, "contact submission delivered", slog.String("email", req.Email))
	return nil
}

// SubmitInscription processes an inscription form submission.
func (s *Service) SubmitInscription(ctx context.Context, meta Meta, req *InscriptionRequest) error {
	req.Sanitize()
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.checkQuota(ctx, ratelimit.Key("inscription:email", req.ParentEmail), meta, "inscription", audit.ScopeEmail, req.ParentEmail); err != nil {
		return err
	}

	if err := s.audit.Log(ctx, audit.ActionInscriptionSubmitted,
		audit.WithIP(meta.IP),
		audit.WithUserAgent(meta.UserAgent),
		audit.WithDetails(map[string]any{
			"parentEmail": req.ParentEmail,
			"parentName":  req.ParentName,
			"childName":   req.ChildName,
			"serviceType": req.ServiceType,
		}),
	); err != nil {
		s.log.WarnContext(ctx, "audit write failed", slog.Any("error", err))
	}

	if err := s.mailCfg.Validate(); err != nil {
		s.log.ErrorContext(ctx, "mail configuration incomplete", slog.Any("error", err))
		return ErrMailNotConfigured
	}

	notif, err := InscriptionNotification(req)
	if err != nil {
		s.log.ErrorContext(ctx, "inscription notification render failed", slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	if err := s.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   s.mailCfg.RecipientEmail,
		ReplyTo:  req.ParentEmail,
		Subject:  notif.Subject,
		BodyHTML: notif.HTML,
		BodyText: notif.Text,
		Tag:      "inscription",
	}); err != nil {
		s.log.ErrorContext(ctx, "inscription notification delivery failed", slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	s.log.InfoContext(ctx, "inscription submission delivered", slog.String("parentEmail", req.ParentEmail))
	return nil
}
