package output

import (
	"fmt"
	"io"

	"github.com/kazuma-desu/drop/pkg/models"
)

// Options is the per-invocation output configuration, built once from
// resolved flag and config state and passed by value.
type Options struct {
	Format  Format
	Quiet   bool
	Verbose bool
	Debug   bool
}

// Render is the single entry point from commands to the screen. The
// data may be one record or a list of records of arbitrary shape.
//
// In quiet mode only record identifiers are written, one per line,
// ignoring columns; records without an identifier are skipped.
// Otherwise the selected format renderer runs and its result is
// written to w in one piece. Format values are validated by
// ParseFormat before commands get here; the default branch is a guard
// against programming errors, not a user-facing path.
func Render(w io.Writer, data any, columns []Column, opts Options) error {
	records := normalizeRecords(data)

	if opts.Quiet {
		for _, record := range records {
			id, ok := recordID(record)
			if !ok {
				continue
			}
			if _, err := fmt.Fprintln(w, id); err != nil {
				return err
			}
		}
		return nil
	}

	var rendered string
	switch opts.Format {
	case FormatJSON:
		var err error
		rendered, err = renderJSON(data)
		if err != nil {
			return err
		}
	case FormatTable:
		rendered = renderTable(records, columns)
	case FormatTSV:
		rendered = renderTSV(records, columns)
	case FormatPlain:
		rendered = renderPlain(records, columns)
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}

	_, err := io.WriteString(w, rendered)
	return err
}

// normalizeRecords flattens the accepted data shapes into a record
// list: a single record becomes a one-element list, non-record entries
// of a mixed []any are dropped.
func normalizeRecords(data any) []map[string]any {
	switch d := data.(type) {
	case nil:
		return nil
	case map[string]any:
		return []map[string]any{d}
	case []map[string]any:
		return d
	case []any:
		var records []map[string]any
		for _, item := range d {
			if record, ok := item.(map[string]any); ok {
				records = append(records, record)
			}
		}
		return records
	default:
		return nil
	}
}

// recordID resolves a record's identifier, accepting _id then id.
func recordID(record map[string]any) (string, bool) {
	for _, key := range []string{"_id", "id"} {
		if val, ok := record[key]; ok {
			if s := models.FormatValue(val); s != "" {
				return s, true
			}
		}
	}
	return "", false
}
