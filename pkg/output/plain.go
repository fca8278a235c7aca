package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kazuma-desu/drop/pkg/models"
)

const (
	// placeholder stands in for absent or empty values so rows never
	// silently disappear.
	placeholder = "—"

	blockWrapWidth = 76
	blockIndent    = "  "
	dividerWidth   = 40
)

// fieldIcons maps normalized field names to their display icon.
var fieldIcons = map[string]string{
	"link":        "🔗",
	"url":         "🔗",
	"tags":        "🏷️",
	"created":     "📅",
	"createdat":   "📅",
	"lastupdate":  "🕒",
	"updated":     "🕒",
	"updatedat":   "🕒",
	"excerpt":     "📝",
	"note":        "📝",
	"description": "📝",
	"type":        "📄",
	"collection":  "📂",
	"count":       "🔢",
	"domain":      "🌐",
	"email":       "✉️",
}

const defaultIcon = "•"

// blockFields are rendered as a labeled, word-wrapped, indented
// paragraph instead of inline.
var blockFields = map[string]bool{
	"excerpt":     true,
	"note":        true,
	"description": true,
	"content":     true,
	"body":        true,
}

// renderPlain is the human-first format: prominent fields lead without
// labels, the rest render as aligned icon-label rows, long text fields
// become wrapped paragraphs, and records are separated by a divider.
func renderPlain(records []map[string]any, columns []Column) string {
	if len(records) == 0 {
		return mutedStyle.Render("No results found.") + "\n"
	}

	blocks := make([]string, len(records))
	for i, record := range records {
		blocks[i] = renderPlainRecord(record, columns)
	}

	divider := "\n\n" + dividerStyle.Render(strings.Repeat("─", dividerWidth)) + "\n\n"
	return strings.Join(blocks, divider) + "\n"
}

func renderPlainRecord(record map[string]any, columns []Column) string {
	var prominent, regular []Column
	for _, col := range columns {
		if col.Prominent {
			prominent = append(prominent, col)
		} else {
			regular = append(regular, col)
		}
	}

	var lines []string

	for i, col := range prominent {
		value := columnValue(record, col)
		if value == "" {
			lines = append(lines, mutedStyle.Render(placeholder))
			continue
		}
		lines = append(lines, prominentStyle(i, col.Key).Render(value))
	}

	if len(prominent) > 0 && len(regular) > 0 {
		lines = append(lines, "")
	}

	labelWidth := 0
	for _, col := range regular {
		if len(col.Header) > labelWidth {
			labelWidth = len(col.Header)
		}
	}

	for _, col := range regular {
		icon := iconFor(col.Key)
		value := columnValue(record, col)

		if blockFields[normalizeKey(lastSegment(col.Key))] && value != "" {
			lines = append(lines, fmt.Sprintf("%s %s:", icon, labelStyle.Render(col.Header)))
			for _, wrapped := range Wrap(value, blockWrapWidth) {
				lines = append(lines, blockIndent+wrapped)
			}
			continue
		}

		if value == "" {
			value = mutedStyle.Render(placeholder)
		}
		label := labelStyle.Render(fmt.Sprintf("%*s", labelWidth, col.Header))
		lines = append(lines, fmt.Sprintf("%s %s: %s", icon, label, value))
	}

	return strings.Join(lines, "\n")
}

func columnValue(record map[string]any, col Column) string {
	val, ok := Resolve(record, col.Key)
	if !ok {
		return ""
	}
	return models.FormatValue(val)
}

// iconFor looks up the display icon for a field key, normalized by
// stripping separators and lower-casing.
func iconFor(key string) string {
	if icon, ok := fieldIcons[normalizeKey(lastSegment(key))]; ok {
		return icon
	}
	return defaultIcon
}

func normalizeKey(key string) string {
	key = strings.ToLower(key)
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', '.', ' ':
			return -1
		}
		return r
	}, key)
}

func lastSegment(key string) string {
	if i := strings.LastIndex(key, "."); i >= 0 {
		return key[i+1:]
	}
	return key
}

func isLinkKey(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "url") || strings.Contains(k, "link")
}

// prominentStyle picks the emphasis for a prominent column: the first
// one is bolded, url/link keys get link emphasis, and a first column
// that is also a link key gets both.
func prominentStyle(index int, key string) lipgloss.Style {
	switch {
	case index == 0 && isLinkKey(key):
		return linkStyle.Bold(true)
	case index == 0:
		return titleStyle
	case isLinkKey(key):
		return linkStyle
	}
	return lipgloss.NewStyle()
}
