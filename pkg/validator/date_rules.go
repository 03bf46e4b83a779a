package validator

import (
	"time"
)

// DateLayout is the wire format for submitted dates.
const DateLayout = "2006-01-02"

// ParseDate parses a submitted date string in DateLayout.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// PastDate validates that a date is strictly before now.
func PastDate(field string, value time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value.Before(time.Now())
		},
		Error: ValidationError{
			Field:   field,
			Message: "date must be in the past",
		},
	}
}

// FutureDate validates that a date is strictly after now.
func FutureDate(field string, value time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value.After(time.Now())
		},
		Error: ValidationError{
			Field:   field,
			Message: "date must be in the future",
		},
	}
}

// PastDateString parses value and requires it to be strictly in the past.
// An unparseable date fails the rule rather than slipping through as a
// zero-value comparison.
func PastDateString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			d, err := ParseDate(value)
			if err != nil {
				return false
			}
			return d.Before(time.Now())
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a date in the past",
		},
	}
}

// FutureDateString parses value and requires it to be strictly in the future.
// An unparseable date fails the rule.
func FutureDateString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			d, err := ParseDate(value)
			if err != nil {
				return false
			}
			return d.After(time.Now())
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a date in the future",
		},
	}
}
