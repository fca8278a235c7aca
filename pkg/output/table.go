package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kazuma-desu/drop/pkg/models"
)

// renderTable projects the records through the columns and renders a
// styled table: rounded borders, alternating row colors, values
// truncated to each column's configured width.
func renderTable(records []map[string]any, columns []Column) string {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}

	rows := make([][]string, len(records))
	for i, record := range records {
		row := make([]string, len(columns))
		for j, col := range columns {
			cell := ""
			if val, ok := Resolve(record, col.Key); ok {
				cell = models.FormatValue(val)
			}
			if col.Width > 0 {
				cell = Truncate(cell, col.Width)
			}
			row[j] = cell
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			// Row 0 in lipgloss table is the header
			if row == 0 {
				return tableHeaderStyle
			}
			if row%2 == 0 {
				return tableEvenRowStyle
			}
			return tableOddRowStyle
		})

	return t.Render() + "\n"
}
