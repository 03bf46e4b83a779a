package leads

import (
	"github.com/garderie-etoiles/website/pkg/sanitizer"
	"github.com/garderie-etoiles/website/pkg/validator"
)

// ContactServices enumerates the reasons offered on the contact form.
var ContactServices = []string{
	"Inscription",
	"Informations sur les tarifs",
	"Questions générales",
	"Visite de la garderie",
	"Autre",
}

// InscriptionServices enumerates the care services on the inscription form.
var InscriptionServices = []string{
	"Garde régulière",
	"Garde occasionnelle",
	"Service de garde d'urgence",
	"Programme éducatif",
	"Autre",
}

// ContactRequest is the general contact form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Details string `json:"details,omitempty"`
}

// Sanitize cleans every field in place. Runs before validation so no raw
// input reaches the rules or the renderer.
func (r *ContactRequest) Sanitize() {
	r.Name = sanitizer.FormField(r.Name)
	r.Email = sanitizer.TrimToLower(sanitizer.FormField(r.Email))
	r.Phone = sanitizer.FormField(r.Phone)
	r.Service = sanitizer.FormField(r.Service)
	r.Details = sanitizer.FormField(r.Details)
}

// Validate checks the sanitized payload and returns a *FieldError with the
// user-facing reason for the first failing field, in form order.
func (r *ContactRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Phone == "" || r.Service == "" {
		return &FieldError{Reason: MsgMissingFields}
	}

	err := validator.Apply(
		validator.ValidEmail("email", r.Email),
		validator.ValidPhone("phone", r.Phone),
		validator.MinDigits("phone", r.Phone, 10),
		validator.OneOf("service", r.Service, ContactServices),
	)
	return firstFieldError(err, map[string]string{
		"email":   MsgInvalidEmail,
		"phone":   MsgInvalidPhone,
		"service": MsgInvalidService,
	})
}

// InscriptionRequest is the multi-step inscription form payload.
type InscriptionRequest struct {
	ParentName     string `json:"parentName"`
	ParentEmail    string `json:"parentEmail"`
	ParentPhone    string `json:"parentPhone"`
	ChildName      string `json:"childName"`
	ChildBirthDate string `json:"childBirthDate"`
	StartDate      string `json:"startDate"`
	ServiceType    string `json:"serviceType"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

// Sanitize cleans every field in place.
func (r *InscriptionRequest) Sanitize() {
	r.ParentName = sanitizer.FormField(r.ParentName)
	r.ParentEmail = sanitizer.TrimToLower(sanitizer.FormField(r.ParentEmail))
	r.ParentPhone = sanitizer.FormField(r.ParentPhone)
	r.ChildName = sanitizer.FormField(r.ChildName)
	r.ChildBirthDate = sanitizer.FormField(r.ChildBirthDate)
	r.StartDate = sanitizer.FormField(r.StartDate)
	r.ServiceType = sanitizer.FormField(r.ServiceType)
	r.AdditionalInfo = sanitizer.FormField(r.AdditionalInfo)
}

// Validate checks the sanitized payload. The birth date must be strictly in
// the past and the desired start date strictly in the future; unparseable
// dates fail the corresponding rule.
func (r *InscriptionRequest) Validate() error {
	if r.ParentName == "" || r.ParentEmail == "" || r.ParentPhone == "" ||
		r.ChildName == "" || r.ChildBirthDate == "" || r.StartDate == "" ||
		r.ServiceType == "" {
		return &FieldError{Reason: MsgMissingFields}
	}

	err := validator.Apply(
		validator.ValidEmail("parentEmail", r.ParentEmail),
		validator.ValidPhone("parentPhone", r.ParentPhone),
		validator.MinDigits("parentPhone", r.ParentPhone, 10),
		validator.PastDateString("childBirthDate", r.ChildBirthDate),
		validator.FutureDateString("startDate", r.StartDate),
		validator.OneOf("serviceType", r.ServiceType, InscriptionServices),
	)
	return firstFieldError(err, map[string]string{
		"parentEmail":    MsgInvalidEmail,
		"parentPhone":    MsgInvalidPhone,
		"childBirthDate": MsgBirthDateNotPast,
		"startDate":      MsgStartDateNotFuture,
		"serviceType":    MsgInvalidService,
	})
}

// firstFieldError converts the first validation error into a *FieldError
// with the mapped user-facing reason. Rule order determines which failure
// the caller sees when several fields are bad at once.
func firstFieldError(err error, reasons map[string]string) error {
	ve := validator.ExtractValidationErrors(err)
	if len(ve) == 0 {
		return nil
	}

	first := ve[0]
	reason, ok := reasons[first.Field]
	if !ok {
		reason = MsgInvalidPayload
	}
	return &FieldError{Field: first.Field, Reason: reason}
}
