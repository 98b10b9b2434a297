package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bidimap/internal/analyze"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
patterns:
  - ./examples/...
  - bidimap/bidi
format: yaml
strict: true
require_inverted: true
concurrency: 2
partial_threshold: 5
log_level: debug
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, StringOrArray{"./examples/...", "bidimap/bidi"}, f.Patterns)
	assert.Equal(t, FormatYAML, f.Format)
	assert.True(t, f.Strict)
	assert.True(t, f.RequireInverted)
	assert.Equal(t, 2, f.Concurrency)
	assert.Equal(t, 5, f.PartialThreshold)
	assert.Equal(t, "debug", f.LogLevel)
}

func TestParse_SinglePattern(t *testing.T) {
	f, err := Parse([]byte(`patterns: ./internal/...`))
	require.NoError(t, err)
	assert.Equal(t, StringOrArray{"./internal/..."}, f.Patterns)
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, StringOrArray{"./..."}, f.Patterns)
	assert.Equal(t, FormatText, f.Format)
	assert.Positive(t, f.Concurrency)
	assert.Equal(t, analyze.DefaultPartialThreshold, f.PartialThreshold)
	assert.Equal(t, "info", f.LogLevel)
	assert.False(t, f.Strict)
}

func TestParse_ZeroThresholdMeansDefault(t *testing.T) {
	f, err := Parse([]byte("partial_threshold: 0"))
	require.NoError(t, err)
	assert.Equal(t, analyze.DefaultPartialThreshold, f.PartialThreshold)
	assert.True(t, Validate(f).IsValid())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("patterns: {a: b}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")

	_, err = Parse([]byte("version: [1"))
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("BIDICHECK_FORMAT", "yaml")
	t.Setenv("BIDICHECK_STRICT", "true")
	t.Setenv("BIDICHECK_CONCURRENCY", "7")

	f := Default()
	require.NoError(t, ApplyEnv(f))

	assert.Equal(t, FormatYAML, f.Format)
	assert.True(t, f.Strict)
	assert.Equal(t, 7, f.Concurrency)
	// Unset variables leave values alone
	assert.Equal(t, "info", f.LogLevel)
}

func TestApplyEnv_Invalid(t *testing.T) {
	t.Setenv("BIDICHECK_CONCURRENCY", "many")

	err := ApplyEnv(Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse environment")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: yaml\npatterns: ./a/...\n"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f.Format)
	assert.Equal(t, StringOrArray{"./a/..."}, f.Patterns)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_DefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	// Missing default file falls back to defaults
	f, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), f)

	require.NoError(t, os.WriteFile(DefaultFileName, []byte("strict: true\n"), 0o644))
	f, err = Load("")
	require.NoError(t, err)
	assert.True(t, f.Strict)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	f := Default()
	f.Patterns = StringOrArray{"./bidi"}

	require.NoError(t, WriteFile(f, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "patterns: ./bidi\n")

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)
}
