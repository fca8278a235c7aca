package output

import "github.com/charmbracelet/lipgloss"

// Color palette - Modern, balanced colors
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorError   = lipgloss.Color("#EF4444") // Red
	colorInfo    = lipgloss.Color("#3B82F6") // Blue
	colorMuted   = lipgloss.Color("#6B7280") // Gray

	// Table row colors - hex format for consistency
	colorTableOdd  = lipgloss.Color("#FCFCFA") // Light gray
	colorTableEven = lipgloss.Color("#A0A0A0") // Medium gray
)

var (
	// titleStyle renders the first prominent field of a record.
	titleStyle = lipgloss.NewStyle().
			Bold(true)

	// linkStyle renders URL-like prominent fields.
	linkStyle = lipgloss.NewStyle().
			Foreground(colorInfo).
			Underline(true)

	// labelStyle renders field labels in the plain format.
	labelStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	// mutedStyle renders placeholders and secondary text.
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// dividerStyle renders the separator between plain-format records.
	dividerStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// errorStyle renders error messages with high visibility.
	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	// warningStyle renders warning messages.
	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	// successStyle renders success messages.
	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)
)

// Table styles
var (
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary).
				Padding(0, 1)

	tableOddRowStyle = lipgloss.NewStyle().
				Foreground(colorTableOdd).
				Padding(0, 1)

	tableEvenRowStyle = lipgloss.NewStyle().
				Foreground(colorTableEven).
				Padding(0, 1)

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary)
)
