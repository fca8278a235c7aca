package output

import (
	"fmt"
	"os"
)

// Status messages go to stderr so stdout stays parseable data.

// Info prints an info message.
func Info(msg string) {
	fmt.Fprintln(os.Stderr, mutedStyle.Render("⋯ "+msg))
}

// Success prints a success message.
func Success(msg string) {
	fmt.Fprintln(os.Stderr, successStyle.Render("✓ "+msg))
}

// Warning prints a warning message.
func Warning(msg string) {
	fmt.Fprintln(os.Stderr, warningStyle.Render("⚠ "+msg))
}

// Error prints an error message.
func Error(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+msg))
}
