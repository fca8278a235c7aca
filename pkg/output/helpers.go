package output

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Truncate truncates a string to maxLen characters, appending "..." if
// truncated. It operates on runes so multibyte characters survive.
// If maxLen <= 0, returns empty string.
// If maxLen <= 3, returns the first maxLen characters without "...".
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", "\\n")
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// Wrap word-wraps s to the given display width, measured with
// runewidth so wide characters count properly. Words longer than the
// width get a line of their own.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		switch {
		case lineWidth == 0:
			line.WriteString(word)
			lineWidth = w
		case lineWidth+1+w <= width:
			line.WriteByte(' ')
			line.WriteString(word)
			lineWidth += 1 + w
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			lineWidth = w
		}
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
