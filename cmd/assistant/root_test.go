package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRoot_Scenario(t *testing.T) {
	input := "add Alice 123\nadd Bob 456\nchange Alice 999\nphone Alice\nall\nexit\n"
	out, _, err := execute(t, input, "--no-banner", "--config", "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Welcome to the assistant bot!"))
	assert.Contains(t, out, "Added: Alice → 123")
	assert.Contains(t, out, "Added: Bob → 456")
	assert.Contains(t, out, "Changed: Alice → 999")
	assert.Contains(t, out, "> 999\n")
	assert.Contains(t, out, "Alice → 999\nBob → 456")
	assert.True(t, strings.HasSuffix(out, "Good bye!\n"))
}

func TestRoot_BannerAndPrompt(t *testing.T) {
	out, _, err := execute(t, "hello\n", "--prompt", "$ ", "--config", "")
	require.NoError(t, err)

	assert.Contains(t, out, "contacts shell")
	assert.Contains(t, out, "$ How can I help you?")
	assert.NotContains(t, out, "\x1b[", "buffers are not terminals")
}

func TestRoot_JSON(t *testing.T) {
	out, _, err := execute(t, "phone Alice\n", "--json", "--config", "")
	require.NoError(t, err)

	assert.NotContains(t, out, "contacts shell", "no banner in JSON mode")
	assert.Contains(t, out, `"output":"Contact 'Alice' not found."`)
	assert.Contains(t, out, `"outcome":"not_found"`)
}

func TestRoot_DebugLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "add Alice 123\n", "--debug", "--no-banner", "--config", "")
	require.NoError(t, err)

	assert.NotContains(t, out, "level=DEBUG")
	assert.Contains(t, errOut, "command dispatched")
	assert.Contains(t, errOut, "session summary")
	assert.NotContains(t, errOut, "→", "responses are never logged")
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assistant.yaml")
	require.NoError(t, os.WriteFile(path, []byte("banner: false\nprompt: \"# \"\n"), 0o644))

	out, _, err := execute(t, "hello\n", "--config", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "contacts shell")
	assert.Contains(t, out, "# How can I help you?")
}

func TestRoot_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assistant.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_input_size: -1\n"), 0o644))

	_, _, err := execute(t, "", "--config", path)
	assert.ErrorContains(t, err, "max_input_size")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "assistant version ")
}
