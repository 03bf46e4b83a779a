package leads

import (
	"errors"
	"fmt"
)

// User-facing response messages. The site and its audience are French, so
// the transport payloads are too.
const (
	MsgContactAccepted     = "Message envoyé avec succès !"
	MsgInscriptionAccepted = "Demande d'inscription envoyée avec succès !"

	MsgInvalidPayload      = "Données invalides"
	MsgMissingFields       = "Tous les champs requis doivent être remplis"
	MsgInvalidEmail        = "Format d'email invalide"
	MsgInvalidPhone        = "Le numéro de téléphone doit contenir au moins 10 chiffres"
	MsgBirthDateNotPast    = "La date de naissance doit être dans le passé"
	MsgStartDateNotFuture  = "La date de début doit être dans le futur"
	MsgInvalidService      = "Type de service invalide"
	MsgTooManySubmissions  = "Trop de soumissions, veuillez réessayer plus tard."
	MsgMailNotConfigured   = "Configuration email non disponible sur le serveur"
	MsgContactSendFailed   = "Échec de l'envoi du message. Veuillez réessayer plus tard."
	MsgInscriptionFailed   = "Échec de l'envoi de la demande d'inscription. Veuillez réessayer plus tard."
)

var (
	// ErrTooManyRequests signals a rate-limit rejection on either scope.
	ErrTooManyRequests = errors.New("leads: too many submissions")

	// ErrMailNotConfigured signals missing outbound mail configuration.
	ErrMailNotConfigured = errors.New("leads: mail transport not configured")

	// ErrDeliveryFailed signals a mail transport failure.
	ErrDeliveryFailed = errors.New("leads: notification delivery failed")
)

// FieldError is a field-validation rejection carrying the user-facing
// reason for the response body.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("leads: invalid field %s: %s", e.Field, e.Reason)
}
