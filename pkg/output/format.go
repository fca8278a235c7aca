package output

import (
	"fmt"
	"os"
	"strings"
)

// Format represents a supported output format.
type Format string

const (
	FormatJSON  Format = "json"
	FormatTable Format = "table"
	FormatTSV   Format = "tsv"
	FormatPlain Format = "plain"
)

var allFormats = []Format{
	FormatJSON,
	FormatTable,
	FormatTSV,
	FormatPlain,
}

// formatSet is derived from allFormats for O(1) validation lookup.
var formatSet map[Format]struct{}

func init() {
	formatSet = make(map[Format]struct{}, len(allFormats))
	for _, f := range allFormats {
		formatSet[f] = struct{}{}
	}
}

// AllFormats returns a copy of all supported formats.
func AllFormats() []Format {
	out := make([]Format, len(allFormats))
	copy(out, allFormats)
	return out
}

// String returns the string representation.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the format is supported.
func (f Format) IsValid() bool {
	_, ok := formatSet[f]
	return ok
}

// ParseFormat parses a string into Format, validating it.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !f.IsValid() {
		validFormats := make([]string, len(allFormats))
		for i, format := range allFormats {
			validFormats[i] = string(format)
		}
		return "", fmt.Errorf("invalid output format: %s (use %s)", s, strings.Join(validFormats, ", "))
	}
	return f, nil
}

// DefaultFormat returns the format used when none is requested: table
// on an interactive terminal, json when output is piped.
func DefaultFormat() Format {
	if IsTerminal(os.Stdout) {
		return FormatTable
	}
	return FormatJSON
}

// ResolveFormat resolves the effective format from the explicit flag
// value and the config-file default. Unrecognized values are rejected
// here, before any rendering work begins.
func ResolveFormat(flagValue, configDefault string) (Format, error) {
	if flagValue != "" {
		return ParseFormat(flagValue)
	}
	if configDefault != "" {
		return ParseFormat(configDefault)
	}
	return DefaultFormat(), nil
}
