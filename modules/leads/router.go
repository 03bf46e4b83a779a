package leads

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/garderie-etoiles/website/binder"
	"github.com/garderie-etoiles/website/core"
	"github.com/garderie-etoiles/website/pkg/clientip"
)

// Router mounts the lead submission endpoints. Unknown paths and wrong
// methods get the JSON error envelope instead of chi's plain-text defaults.
func Router(svc *Service) http.Handler {
	r := chi.NewRouter()
	r.Post("/contact", svc.handleContact)
	r.Post("/inscription", svc.handleInscription)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		core.JSONError(w, core.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		core.JSONError(w, core.ErrMethodNotAllowed)
	})
	return r
}

func requestMeta(r *http.Request) Meta {
	return Meta{
		IP:        clientip.GetIP(r),
		UserAgent: r.UserAgent(),
	}
}

func (s *Service) handleContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	meta := requestMeta(r)

	if err := s.CheckIPQuota(ctx, "contact", meta); err != nil {
		writeSubmitError(w, err, MsgContactSendFailed)
		return
	}

	var req ContactRequest
	if err := binder.BindJSON(r, &req); err != nil {
		core.Error(w, http.StatusBadRequest, "invalid_payload", MsgInvalidPayload, nil)
		return
	}

	if err := s.SubmitContact(ctx, meta, &req); err != nil {
		writeSubmitError(w, err, MsgContactSendFailed)
		return
	}

	core.Message(w, MsgContactAccepted)
}

func (s *Service) handleInscription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	meta := requestMeta(r)

	if err := s.CheckIPQuota(ctx, "inscription", meta); err != nil {
		writeSubmitError(w, err, MsgInscriptionFailed)
		return
	}

	var req InscriptionRequest
	if err := binder.BindJSON(r, &req); err != nil {
		core.Error(w, http.StatusBadRequest, "invalid_payload", MsgInvalidPayload, nil)
		return
	}

	if err := s.SubmitInscription(ctx, meta, &req); err != nil {
		writeSubmitError(w, err, MsgInscriptionFailed)
		return
	}

	core.Message(w, MsgInscriptionAccepted)
}

// writeSubmitError maps pipeline errors to the French responses the site
// frontend displays verbatim.
func writeSubmitError(w http.ResponseWriter, err error, deliveryMsg string) {
	var fieldErr *FieldError
	switch {
	case errors.As(err, &fieldErr):
		core.Error(w, http.StatusBadRequest, "validation_error", fieldErr.Reason, nil)
	case errors.Is(err, ErrTooManyRequests):
		core.Error(w, http.StatusTooManyRequests, "rate_limited", MsgTooManySubmissions, nil)
	case errors.Is(err, ErrMailNotConfigured):
		core.Error(w, http.StatusInternalServerError, "mail_not_configured", MsgMailNotConfigured, nil)
	default:
		core.Error(w, http.StatusInternalServerError, "delivery_failed", deliveryMsg, nil)
	}
}
