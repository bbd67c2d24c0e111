package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "no transforms",
			input:      " x ",
			transforms: nil,
			expected:   " x ",
		},
		{
			name:       "single transform",
			input:      "  hello  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "hello",
		},
		{
			name:  "transforms run in order",
			input: " https://example.com/\r\n path ",
			transforms: []func(string) string{
				sanitizer.StripLineBreaks,
				sanitizer.Trim,
			},
			expected: "https://example.com/ path",
		},
		{
			name:  "order matters",
			input: "\nA",
			transforms: []func(string) string{
				strings.ToLower,
				sanitizer.StripLeadingNewline,
			},
			expected: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.NormalizeNewlines, sanitizer.StripLeadingNewline)
	assert.Equal(t, "line one\nline two", clean("\r\nline one\r\nline two"))
	assert.Equal(t, "x", clean("x"))

	double := sanitizer.Compose(func(n int) int { return n * 2 }, func(n int) int { return n + 1 })
	assert.Equal(t, 7, double(3))
}
