package validator

import "slices"

// OneOf validates that a value is one of the allowed choices.
func OneOf[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be one of the allowed values",
		},
	}
}
