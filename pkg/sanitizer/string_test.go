package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/garderie-etoiles/website/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes leading and trailing spaces",
			input:    "  hello world  ",
			expected: "hello world",
		},
		{
			name:     "removes tabs and newlines",
			input:    "\t\nhello\n\t",
			expected: "hello",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "preserves internal whitespace",
			input:    "  hello  world  ",
			expected: "hello  world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Trim(tt.input))
		})
	}
}

func TestTrimToLower(t *testing.T) {
	assert.Equal(t, "jean@example.com", sanitizer.TrimToLower("  Jean@Example.COM "))
	assert.Equal(t, "", sanitizer.TrimToLower("   "))
}

func TestMaxLength(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "truncates long string",
			input:    "hello world",
			maxLen:   5,
			expected: "hello",
		},
		{
			name:     "keeps short string intact",
			input:    "hello",
			maxLen:   10,
			expected: "hello",
		},
		{
			name:     "counts runes not bytes",
			input:    "héllo wörld",
			maxLen:   5,
			expected: "héllo",
		},
		{
			name:     "zero max yields empty",
			input:    "hello",
			maxLen:   0,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.MaxLength(tt.input, tt.maxLen))
		})
	}
}

func TestRemoveChars(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", sanitizer.RemoveChars("<script>alert(1)</script>", "<>"))
	assert.Equal(t, "abc", sanitizer.RemoveChars("a-b-c", "-"))
}

func TestKeepDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips formatting from phone number",
			input:    "+1 (514) 555-0100",
			expected: "15145550100",
		},
		{
			name:     "empty for letters only",
			input:    "abc",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.KeepDigits(tt.input))
		})
	}
}

func TestFormField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trims and strips angle brackets",
			input:    "  <b>Jean</b> Tremblay ",
			expected: "b/bJean/b Tremblay",
		},
		{
			name:     "removes script markup",
			input:    "<script>alert(1)</script>",
			expected: "scriptalert(1)/script",
		},
		{
			name:     "empty input yields empty output",
			input:    "",
			expected: "",
		},
		{
			name:     "preserves newlines in free text",
			input:    "line1\nline2",
			expected: "line1\nline2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.FormField(tt.input))
		})
	}
}

func TestFormFieldBounds(t *testing.T) {
	long := strings.Repeat("a<>", 2000)
	out := sanitizer.FormField(long)

	assert.LessOrEqual(t, len([]rune(out)), 1000)
	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, ">")
}

func TestFormFieldIdempotent(t *testing.T) {
	inputs := []string{
		"  <b>hello</b>  ",
		strings.Repeat("x", 5000),
		"plain text",
		"  spaced <out>  ",
		strings.Repeat("a", 999) + " b", // truncation lands on whitespace
		"",
	}

	for _, in := range inputs {
		once := sanitizer.FormField(in)
		assert.Equal(t, once, sanitizer.FormField(once))
	}
}
