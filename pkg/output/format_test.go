package output

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{"json", "json", FormatJSON, false},
		{"table", "table", FormatTable, false},
		{"tsv", "tsv", FormatTSV, false},
		{"plain", "plain", FormatPlain, false},
		{"bogus rejected", "bogus", "", true},
		{"yaml rejected", "yaml", "", true},
		{"empty rejected", "", "", true},
		{"case sensitive", "JSON", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid output format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatErrorListsValidFormats(t *testing.T) {
	_, err := ParseFormat("bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json, table, tsv, plain")
}

func TestResolveFormat(t *testing.T) {
	// Explicit flag wins over the config default
	f, err := ResolveFormat("tsv", "json")
	require.NoError(t, err)
	assert.Equal(t, FormatTSV, f)

	// Config default applies when the flag is empty
	f, err = ResolveFormat("", "plain")
	require.NoError(t, err)
	assert.Equal(t, FormatPlain, f)

	// Invalid explicit value is rejected before any rendering
	_, err = ResolveFormat("bogus", "")
	assert.Error(t, err)

	// Invalid config default is rejected too
	_, err = ResolveFormat("", "bogus")
	assert.Error(t, err)
}

func TestResolveFormatEnvironmentDefault(t *testing.T) {
	f, err := ResolveFormat("", "")
	require.NoError(t, err)

	want := FormatJSON
	if IsTerminal(os.Stdout) {
		want = FormatTable
	}
	assert.Equal(t, want, f)
}

func TestAllFormatsIsACopy(t *testing.T) {
	formats := AllFormats()
	formats[0] = Format("mutated")
	assert.Equal(t, FormatJSON, AllFormats()[0])
}
