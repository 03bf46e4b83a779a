// Package validator provides rule-based validation for submitted form data.
//
// Validation is expressed as a flat list of rules applied together, so a
// caller collects every field error in one pass instead of failing on the
// first one:
//
//	err := validator.Apply(
//		validator.Required("name", req.Name),
//		validator.ValidEmail("email", req.Email),
//		validator.MinDigits("phone", req.Phone, 10),
//	)
//
// All rules are pure, synchronous and total: a rule never panics and only
// produces a boolean outcome with an attached field error.
package validator
