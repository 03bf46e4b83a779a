package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Minimal syntactic email shape: local part, "@", domain, ".", TLD.
	// Deliberately not RFC 5322 - the form accepts what a person would type
	// into an email field and nothing more exotic.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Phone shape: optional leading "+", then digits, spaces, hyphens and
	// parentheses, at least 10 characters total.
	phoneRegex = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)

	digitRegex = regexp.MustCompile(`\D`)
)

// ValidEmail validates that a string has the syntactic shape of an email
// address. Case is not normalized here; callers lowercase separately.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// ValidPhone validates the overall shape of a phone number after stripping
// whitespace. This is a coarse check; MinDigits governs final acceptance.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			stripped := strings.Join(strings.Fields(value), "")
			return phoneRegex.MatchString(stripped)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid phone number",
		},
	}
}

// MinDigits validates that a string contains at least min digits once all
// non-digit characters are stripped.
func MinDigits(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(digitRegex.ReplaceAllString(value, "")) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must contain at least %d digits", min),
		},
	}
}
