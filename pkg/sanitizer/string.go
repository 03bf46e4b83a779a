package sanitizer

import (
	"strings"
	"unicode"
)

// maxFieldLength bounds every free-text form field.
const maxFieldLength = 1000

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MaxLength truncates a string to the specified maximum length in runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// RemoveChars removes all occurrences of the specified characters from a string.
func RemoveChars(s string, chars string) string {
	for _, char := range chars {
		s = strings.ReplaceAll(s, string(char), "")
	}
	return s
}

// KeepDigits keeps only numeric digits.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// FormField sanitizes a user-submitted form field: trims surrounding
// whitespace, strips angle brackets, and caps the result at 1000 runes.
//
// Stripping '<' and '>' is a defense against markup injection into the
// generated notification email, not a general XSS filter; rendered output is
// additionally HTML-escaped. FormField is idempotent: truncation can expose
// trailing whitespace, so the result is trimmed again.
func FormField(s string) string {
	return Trim(MaxLength(RemoveChars(Trim(s), "<>"), maxFieldLength))
}
