package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyKeepsDefaults(t *testing.T) {
	c, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestParseOverrides(t *testing.T) {
	c, err := Parse(strings.NewReader(`
prompt = "> "
history_limit = 10
color = false
`))
	require.NoError(t, err)
	assert.Equal(t, "> ", c.Prompt)
	assert.Equal(t, 10, c.HistoryLimit)
	assert.False(t, c.Color)
}

func TestParseRejectsUnknownKey(t *testing.T) {
	_, err := Parse(strings.NewReader(`colour = true`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestParseRejectsNegativeLimit(t *testing.T) {
	_, err := Parse(strings.NewReader(`history_limit = -1`))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stackrepl.toml")
	require.NoError(t, os.WriteFile(path, []byte(`prompt = "stack> "`), 0o644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "stack> ", c.Prompt)
	assert.Equal(t, DefaultHistoryLimit, c.HistoryLimit)
	assert.True(t, c.Color)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadFromFileWrapsParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`prompt = `), 0o644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestValidate(t *testing.T) {
	c := Default()
	assert.NoError(t, c.Validate())
	c.HistoryLimit = 0
	assert.NoError(t, c.Validate())
	c.HistoryLimit = -5
	assert.Error(t, c.Validate())
}
