package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// IsTerminal returns true if f is a terminal (TTY).
// Uses go-isatty for cross-platform detection including Windows ConPTY.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StyleIfTerminal applies the style only if stdout is a terminal.
func StyleIfTerminal(style lipgloss.Style, content string) string {
	if IsTerminal(os.Stdout) {
		return style.Render(content)
	}
	return content
}
