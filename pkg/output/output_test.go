package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColumns = []Column{
	{Key: "title", Header: "Title", Prominent: true},
	{Key: "link", Header: "Link", Prominent: true},
	{Key: "tags", Header: "Tags"},
	{Key: "created", Header: "Created"},
}

func TestRenderQuietMode(t *testing.T) {
	var buf bytes.Buffer
	data := []map[string]any{
		{"_id": float64(100), "title": "first"},
		{"id": float64(200), "title": "second"},
	}

	err := Render(&buf, data, testColumns, Options{Quiet: true})

	require.NoError(t, err)
	assert.Equal(t, "100\n200\n", buf.String())
}

func TestRenderQuietSkipsRecordsWithoutID(t *testing.T) {
	var buf bytes.Buffer
	data := []map[string]any{
		{"_id": float64(1)},
		{"title": "no id here"},
		{"id": float64(3)},
	}

	err := Render(&buf, data, testColumns, Options{Quiet: true})

	require.NoError(t, err)
	assert.Equal(t, "1\n3\n", buf.String())
}

func TestRenderQuietSingleRecord(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, map[string]any{"_id": float64(7)}, nil, Options{Quiet: true})

	require.NoError(t, err)
	assert.Equal(t, "7\n", buf.String())
}

func TestRenderQuietPrefersUnderscoreID(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, map[string]any{"_id": float64(1), "id": float64(2)}, nil, Options{Quiet: true})

	require.NoError(t, err)
	assert.Equal(t, "1\n", buf.String())
}

func TestRenderJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	data := []map[string]any{
		{"_id": float64(1), "title": "Go", "nested": map[string]any{"k": "v"}},
	}

	err := Render(&buf, data, testColumns, Options{Format: FormatJSON})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Go", decoded[0]["title"])
	// JSON does not filter by columns
	assert.Contains(t, buf.String(), "nested")
}

func TestRenderTSV(t *testing.T) {
	var buf bytes.Buffer
	data := []map[string]any{
		{"title": "Go", "link": "https://go.dev", "tags": []any{"lang", "docs"}},
		{"title": "Zap"},
	}

	err := Render(&buf, data, testColumns, Options{Format: FormatTSV})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Title\tLink\tTags\tCreated", lines[0])
	assert.Equal(t, "Go\thttps://go.dev\tlang, docs\t", lines[1])
	assert.Equal(t, "Zap\t\t\t", lines[2])
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	data := []map[string]any{
		{"title": "Go", "link": "https://go.dev"},
	}

	err := Render(&buf, data, testColumns, Options{Format: FormatTable})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "https://go.dev")
}

func TestRenderUnsupportedFormatGuard(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, []map[string]any{{"_id": float64(1)}}, testColumns, Options{Format: Format("bogus")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
	assert.Empty(t, buf.String(), "nothing may be written before the format check")
}

func TestRenderSingleWrite(t *testing.T) {
	w := &countingWriter{}
	data := []map[string]any{
		{"_id": float64(1), "title": "a"},
		{"_id": float64(2), "title": "b"},
	}

	require.NoError(t, Render(w, data, testColumns, Options{Format: FormatPlain}))
	assert.Equal(t, 1, w.writes, "non-quiet output is one composed write")
}

func TestNormalizeRecords(t *testing.T) {
	single := map[string]any{"a": 1}
	assert.Len(t, normalizeRecords(single), 1)
	assert.Len(t, normalizeRecords([]map[string]any{single, single}), 2)
	assert.Len(t, normalizeRecords([]any{single, "noise", single}), 2)
	assert.Nil(t, normalizeRecords(nil))
	assert.Nil(t, normalizeRecords(42))
}

type countingWriter struct {
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return len(p), nil
}
