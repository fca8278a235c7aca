package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short string unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"long string truncated", "hello world", 8, "hello..."},
		{"empty string", "", 5, ""},
		{"maxLen zero returns empty", "hello", 0, ""},
		{"negative maxLen returns empty", "hello", -5, ""},
		{"maxLen 3 no ellipsis", "hello", 3, "hel"},
		{"newlines escaped", "a\nb", 10, "a\\nb"},
		{"unicode runes preserved", "héllo wörld", 8, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.maxLen))
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{"fits on one line", "short text", 20, []string{"short text"}},
		{"wraps at width", "aa bb cc dd", 5, []string{"aa bb", "cc dd"}},
		{"long word gets own line", "a verylongword b", 6, []string{"a", "verylongword", "b"}},
		{"empty input", "", 10, []string{""}},
		{"collapses whitespace", "a   b\t\tc", 20, []string{"a b c"}},
		{"nonpositive width passthrough", "a b c", 0, []string{"a b c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.input, tt.width))
		})
	}
}

func TestWrapKeepsAllWords(t *testing.T) {
	input := strings.Repeat("alpha beta gamma ", 10)
	lines := Wrap(strings.TrimSpace(input), 24)

	joined := strings.Join(lines, " ")
	assert.Equal(t, strings.Join(strings.Fields(input), " "), joined)
	for _, line := range lines {
		assert.NotEmpty(t, line)
	}
}
