package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, "assistant.yaml", "prompt: \"$ \"\nbanner: false\nlog_level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "$ ", cfg.Prompt)
	assert.False(t, cfg.Banner)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4096, cfg.MaxInputSize, "unset keys keep their defaults")
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "assistant.json", `{"json": true, "max_input_size": 128}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.JSON)
	assert.Equal(t, 128, cfg.MaxInputSize)
	assert.True(t, cfg.Banner)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeFile(t, "bad.yaml", "max_input_size: [1, 2]\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "zero.yaml", "max_input_size: 0\n"))
	assert.ErrorContains(t, err, "max_input_size")

	_, err = Load(writeFile(t, "level.yaml", "log_level: chatty\n"))
	assert.ErrorContains(t, err, "chatty")
}
