package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazuma-desu/drop/pkg/client"
	"github.com/kazuma-desu/drop/pkg/testutil"
)

func resetLsOpts(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		lsOpts.collection = 0
		lsOpts.search = ""
	})
}

func sampleBookmarks() []map[string]any {
	return []map[string]any{
		{
			"_id":   float64(101),
			"title": "Go Blog",
			"link":  "https://go.dev/blog",
			"tags":  []any{"go"},
		},
		{
			"_id":   float64(102),
			"title": "Raindrop API",
			"link":  "https://developer.raindrop.io",
			"tags":  []any{"api", "bookmarks"},
		},
	}
}

func TestRunLsQuiet(t *testing.T) {
	resetLsOpts(t)
	isolateConfig(t)
	setOutputFlags(t, "json", true)

	mock := client.NewMockClient()
	mock.ListBookmarksFunc = func(_ context.Context, _ int64) ([]map[string]any, error) {
		return sampleBookmarks(), nil
	}
	withMockClient(t, mock)

	out, err := testutil.CaptureStdout(func() error {
		return runLs(lsCmd, nil)
	})
	require.NoError(t, err)
	assert.Equal(t, "101\n102\n", out)
}

func TestRunLsJSON(t *testing.T) {
	resetLsOpts(t)
	isolateConfig(t)
	setOutputFlags(t, "json", false)

	mock := client.NewMockClient()
	mock.ListBookmarksFunc = func(_ context.Context, _ int64) ([]map[string]any, error) {
		return sampleBookmarks(), nil
	}
	withMockClient(t, mock)

	out, err := testutil.CaptureStdout(func() error {
		return runLs(lsCmd, nil)
	})
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "Go Blog", records[0]["title"])
}

func TestRunLsTSV(t *testing.T) {
	resetLsOpts(t)
	isolateConfig(t)
	setOutputFlags(t, "tsv", false)

	mock := client.NewMockClient()
	mock.ListBookmarksFunc = func(_ context.Context, _ int64) ([]map[string]any, error) {
		return sampleBookmarks(), nil
	}
	withMockClient(t, mock)

	out, err := testutil.CaptureStdout(func() error {
		return runLs(lsCmd, nil)
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "TITLE\tLINK"))
	assert.Contains(t, lines[1], "Go Blog\thttps://go.dev/blog")
}

func TestRunLsPassesCollectionID(t *testing.T) {
	resetLsOpts(t)
	isolateConfig(t)
	setOutputFlags(t, "json", false)
	lsOpts.collection = 42

	mock := client.NewMockClient()
	withMockClient(t, mock)

	_, err := testutil.CaptureStdout(func() error {
		return runLs(lsCmd, nil)
	})
	require.NoError(t, err)
	require.Len(t, mock.ListCalls, 1)
	assert.Equal(t, int64(42), mock.ListCalls[0])
}

func TestRunLsPositionalCollectionID(t *testing.T) {
	resetLsOpts(t)
	isolateConfig(t)
	setOutputFlags(t, "json", false)

	mock := client.NewMockClient()
	withMockClient(t, mock)

	_, err := testutil.CaptureStdout(func() error {
		return runLs(lsCmd, []string{"7"})
	})
	require.NoError(t, err)
	require.Len(t, mock.ListCalls, 1)
	assert.Equal(t, int64(7), mock.ListCalls[0])
}

func TestRunLsInvalidCollectionID(t *testing.T) {
	resetLsOpts(t)
	isolateConfig(t)

	err := runLs(lsCmd, []string{"abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid collection id")
}

func TestRunLsSearchFilter(t *testing.T) {
	resetLsOpts(t)
	isolateConfig(t)
	setOutputFlags(t, "json", false)
	lsOpts.search = "raindrop"

	mock := client.NewMockClient()
	mock.ListBookmarksFunc = func(_ context.Context, _ int64) ([]map[string]any, error) {
		return sampleBookmarks(), nil
	}
	withMockClient(t, mock)

	out, err := testutil.CaptureStdout(func() error {
		return runLs(lsCmd, nil)
	})
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Raindrop API", records[0]["title"])
}

func TestRunLsClientError(t *testing.T) {
	resetLsOpts(t)
	isolateConfig(t)
	setOutputFlags(t, "json", false)

	mock := client.NewMockClient()
	mock.ListBookmarksFunc = func(_ context.Context, _ int64) ([]map[string]any, error) {
		return nil, errors.New("connection refused")
	}
	withMockClient(t, mock)

	_, err := testutil.CaptureStdout(func() error {
		return runLs(lsCmd, nil)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list bookmarks")
}
