package output

import "strings"

// Column describes one record field to display: the dotted path to
// resolve, its header label, an optional table width, and whether the
// plain renderer treats it as prominent (unlabeled, listed first).
type Column struct {
	Key       string
	Header    string
	Width     int
	Prominent bool
}

// Resolve walks a dotted key path through nested maps and returns the
// leaf value. The second return reports whether the full path was
// present; an unresolvable path is absent, never an error.
func Resolve(record map[string]any, path string) (any, bool) {
	if record == nil || path == "" {
		return nil, false
	}

	current := any(record)
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
