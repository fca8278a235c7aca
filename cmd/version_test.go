package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazuma-desu/drop/pkg/testutil"
)

func TestRunVersionText(t *testing.T) {
	setOutputFlags(t, "", false)

	out, err := testutil.CaptureStdout(func() error {
		return runVersion(versionCmd, nil)
	})
	require.NoError(t, err)
	assert.Contains(t, out, "drop version dev")
	assert.Contains(t, out, "go version:")
	assert.Contains(t, out, "platform:")
}

func TestRunVersionJSON(t *testing.T) {
	setOutputFlags(t, "json", false)

	out, err := testutil.CaptureStdout(func() error {
		return runVersion(versionCmd, nil)
	})
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "dev", info["version"])
	assert.NotEmpty(t, info["goVersion"])
	assert.NotEmpty(t, info["platform"])
}
