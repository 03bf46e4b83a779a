package leads_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garderie-etoiles/website/modules/leads"
)

func validInscription() *leads.InscriptionRequest {
	now := time.Now()
	return &leads.InscriptionRequest{
		ParentName:     "Jean Tremblay",
		ParentEmail:    "jean.tremblay@example.com",
		ParentPhone:    "514-555-0199",
		ChildName:      "Léa Tremblay",
		ChildBirthDate: now.AddDate(-3, 0, 0).Format("2006-01-02"),
		StartDate:      now.AddDate(0, 1, 0).Format("2006-01-02"),
		ServiceType:    "Garde régulière",
	}
}

func validContact() *leads.ContactRequest {
	return &leads.ContactRequest{
		Name:    "Marie Gagnon",
		Email:   "marie.gagnon@example.com",
		Phone:   "438 555 0123",
		Service: "Questions générales",
		Details: "Bonjour, avez-vous des places?",
	}
}

func TestContactRequest_Sanitize(t *testing.T) {
	t.Parallel()

	req := &leads.ContactRequest{
		Name:    "  <b>Marie</b>  ",
		Email:   "  Marie.Gagnon@Example.COM ",
		Phone:   "438 555 0123",
		Service: "Questions générales",
		Details: "<script>alert(1)</script>",
	}
	req.Sanitize()

	assert.Equal(t, "bMarie/b", req.Name)
	assert.Equal(t, "marie.gagnon@example.com", req.Email)
	assert.Equal(t, "scriptalert(1)/script", req.Details)
	assert.NotContains(t, req.Name, "<")
	assert.NotContains(t, req.Details, ">")
}

func TestContactRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(*leads.ContactRequest)
		wantReason string
	}{
		{
			name:   "valid",
			mutate: func(r *leads.ContactRequest) {},
		},
		{
			name:   "valid without details",
			mutate: func(r *leads.ContactRequest) { r.Details = "" },
		},
		{
			name:       "missing name",
			mutate:     func(r *leads.ContactRequest) { r.Name = "" },
			wantReason: leads.MsgMissingFields,
		},
		{
			name:       "missing service",
			mutate:     func(r *leads.ContactRequest) { r.Service = "" },
			wantReason: leads.MsgMissingFields,
		},
		{
			name:       "bad email shape",
			mutate:     func(r *leads.ContactRequest) { r.Email = "marie@nodot" },
			wantReason: leads.MsgInvalidEmail,
		},
		{
			name:       "phone too short",
			mutate:     func(r *leads.ContactRequest) { r.Phone = "555-0123" },
			wantReason: leads.MsgInvalidPhone,
		},
		{
			name:       "unknown service",
			mutate:     func(r *leads.ContactRequest) { r.Service = "Livraison" },
			wantReason: leads.MsgInvalidService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validContact()
			tt.mutate(req)
			err := req.Validate()

			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}

			var fieldErr *leads.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantReason, fieldErr.Reason)
		})
	}
}

func TestInscriptionRequest_Validate(t *testing.T) {
	t.Parallel()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	tests := []struct {
		name       string
		mutate     func(*leads.InscriptionRequest)
		wantReason string
	}{
		{
			name:   "valid",
			mutate: func(r *leads.InscriptionRequest) {},
		},
		{
			name:       "missing child name",
			mutate:     func(r *leads.InscriptionRequest) { r.ChildName = "" },
			wantReason: leads.MsgMissingFields,
		},
		{
			name:       "whitespace-only parent name",
			mutate:     func(r *leads.InscriptionRequest) { r.ParentName = "   " },
			wantReason: leads.MsgMissingFields,
		},
		{
			name:       "bad parent email",
			mutate:     func(r *leads.InscriptionRequest) { r.ParentEmail = "jean tremblay@example.com" },
			wantReason: leads.MsgInvalidEmail,
		},
		{
			name:       "phone with too few digits",
			mutate:     func(r *leads.InscriptionRequest) { r.ParentPhone = "(514) 555" },
			wantReason: leads.MsgInvalidPhone,
		},
		{
			name:       "phone with letters despite enough digits",
			mutate:     func(r *leads.InscriptionRequest) { r.ParentPhone = "poste 514-555-0199" },
			wantReason: leads.MsgInvalidPhone,
		},
		{
			name:       "birth date tomorrow",
			mutate:     func(r *leads.InscriptionRequest) { r.ChildBirthDate = tomorrow },
			wantReason: leads.MsgBirthDateNotPast,
		},
		{
			name:       "unparseable birth date",
			mutate:     func(r *leads.InscriptionRequest) { r.ChildBirthDate = "pas-une-date" },
			wantReason: leads.MsgBirthDateNotPast,
		},
		{
			name:       "start date yesterday",
			mutate:     func(r *leads.InscriptionRequest) { r.StartDate = yesterday },
			wantReason: leads.MsgStartDateNotFuture,
		},
		{
			name:       "unparseable start date",
			mutate:     func(r *leads.InscriptionRequest) { r.StartDate = "2025-13-45" },
			wantReason: leads.MsgStartDateNotFuture,
		},
		{
			name:       "unknown service type",
			mutate:     func(r *leads.InscriptionRequest) { r.ServiceType = "Pension complète" },
			wantReason: leads.MsgInvalidService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validInscription()
			req.Sanitize()
			tt.mutate(req)
			req.Sanitize()
			err := req.Validate()

			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}

			var fieldErr *leads.FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.wantReason, fieldErr.Reason)
		})
	}
}

func TestInscriptionRequest_SanitizeCapsLongInput(t *testing.T) {
	t.Parallel()

	req := validInscription()
	req.AdditionalInfo = strings.Repeat("à", 2000)
	req.Sanitize()

	assert.Equal(t, 1000, len([]rune(req.AdditionalInfo)))
	require.NoError(t, req.Validate())
}
