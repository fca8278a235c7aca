package output

import (
	"strings"

	"github.com/kazuma-desu/drop/pkg/models"
)

// renderTSV projects the records through the columns as tab-separated
// lines with a header row. No truncation and no styling: this format
// exists for cut/awk pipelines.
func renderTSV(records []map[string]any, columns []Column) string {
	var b strings.Builder

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	b.WriteString(strings.Join(headers, "\t"))
	b.WriteByte('\n')

	for _, record := range records {
		cells := make([]string, len(columns))
		for i, col := range columns {
			if val, ok := Resolve(record, col.Key); ok {
				cells[i] = models.FormatValue(val)
			}
		}
		b.WriteString(strings.Join(cells, "\t"))
		b.WriteByte('\n')
	}

	return b.String()
}
