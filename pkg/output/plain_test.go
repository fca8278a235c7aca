package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var plainColumns = []Column{
	{Key: "title", Header: "Title", Prominent: true},
	{Key: "link", Header: "Link", Prominent: true},
	{Key: "excerpt", Header: "Excerpt"},
	{Key: "tags", Header: "Tags"},
	{Key: "created", Header: "Created"},
}

func TestRenderPlainEmptyList(t *testing.T) {
	out := renderPlain(nil, plainColumns)

	assert.NotEmpty(t, out)
	assert.Contains(t, out, "No results found.")
}

func TestRenderPlainProminentFirst(t *testing.T) {
	records := []map[string]any{{
		"title":   "Go Blog",
		"link":    "https://go.dev/blog",
		"tags":    []any{"go", "news"},
		"created": "2026-01-15",
	}}

	out := renderPlain(records, plainColumns)
	lines := strings.Split(out, "\n")

	require.GreaterOrEqual(t, len(lines), 5)
	assert.Contains(t, lines[0], "Go Blog")
	assert.NotContains(t, lines[0], "Title", "prominent fields are unlabeled")
	assert.Contains(t, lines[1], "https://go.dev/blog")
	assert.Equal(t, "", lines[2], "blank line separates prominent from labeled fields")
	assert.Contains(t, out, "Tags")
	assert.Contains(t, out, "go, news")
	assert.Contains(t, out, "Created")
}

func TestRenderPlainEmptyBlockFieldShowsPlaceholder(t *testing.T) {
	records := []map[string]any{{
		"title":   "T",
		"excerpt": "",
	}}

	out := renderPlain(records, plainColumns)

	assert.Contains(t, out, "Excerpt")
	assert.Contains(t, out, placeholder)
	// An empty block field must not produce an indented empty paragraph
	assert.NotContains(t, out, "\n"+blockIndent+"\n")
}

func TestRenderPlainBlockFieldWraps(t *testing.T) {
	long := strings.Repeat("word ", 40)
	records := []map[string]any{{
		"title":   "T",
		"excerpt": strings.TrimSpace(long),
	}}

	out := renderPlain(records, plainColumns)

	assert.Contains(t, out, "Excerpt")
	var wrapped int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, blockIndent+"word") {
			wrapped++
		}
	}
	assert.GreaterOrEqual(t, wrapped, 2, "long excerpt wraps onto multiple indented lines")
}

func TestRenderPlainAbsentFieldShowsPlaceholder(t *testing.T) {
	records := []map[string]any{{
		"title": "only a title",
	}}

	out := renderPlain(records, plainColumns)

	assert.Contains(t, out, "Tags")
	assert.Contains(t, out, placeholder)
}

func TestRenderPlainMultipleRecordsDivided(t *testing.T) {
	records := []map[string]any{
		{"title": "first"},
		{"title": "second"},
	}

	out := renderPlain(records, plainColumns)

	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Contains(t, out, "────", "records are joined by a divider")
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "────"))
	assert.Less(t, strings.Index(out, "────"), strings.Index(out, "second"))
}

func TestProminentStyle(t *testing.T) {
	t.Run("first column is bold", func(t *testing.T) {
		s := prominentStyle(0, "title")
		assert.True(t, s.GetBold())
		assert.False(t, s.GetUnderline())
	})

	t.Run("link column is underlined", func(t *testing.T) {
		s := prominentStyle(1, "link")
		assert.True(t, s.GetUnderline())
		assert.False(t, s.GetBold())
	})

	t.Run("first column that is a link gets both", func(t *testing.T) {
		for _, key := range []string{"link", "url", "sourceUrl"} {
			s := prominentStyle(0, key)
			assert.True(t, s.GetBold(), key)
			assert.True(t, s.GetUnderline(), key)
		}
	})

	t.Run("later non-link column is unstyled", func(t *testing.T) {
		s := prominentStyle(2, "excerpt")
		assert.False(t, s.GetBold())
		assert.False(t, s.GetUnderline())
	})
}

func TestIconFor(t *testing.T) {
	assert.Equal(t, "🔗", iconFor("link"))
	assert.Equal(t, "🔗", iconFor("url"))
	assert.Equal(t, "📅", iconFor("created"))
	assert.Equal(t, "🕒", iconFor("last_update"), "separators are stripped before lookup")
	assert.Equal(t, "📅", iconFor("Created-At"))
	assert.Equal(t, defaultIcon, iconFor("mystery"))
}

func TestIsLinkKey(t *testing.T) {
	assert.True(t, isLinkKey("link"))
	assert.True(t, isLinkKey("url"))
	assert.True(t, isLinkKey("avatarUrl"))
	assert.False(t, isLinkKey("title"))
}
