package output

import (
	"encoding/json"
	"fmt"
)

// renderJSON serializes the record or record list as indented JSON.
// No column filtering: the full payload is the point of this format.
func renderJSON(data any) (string, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}
	return string(out) + "\n", nil
}
