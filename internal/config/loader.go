package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"bidimap/internal/analyze"
)

// Default returns the configuration used when no file is present.
func Default() *File {
	f := &File{}
	applyDefaults(f)

	return f
}

// Load reads path, falling back to defaults when path is empty or names the
// default file and that file does not exist. Environment overrides are
// applied last.
func Load(path string) (*File, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	f, err := LoadFile(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		f = Default()
	default:
		return nil, err
	}

	if err := ApplyEnv(f); err != nil {
		return nil, err
	}

	return f, nil
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&f)

	return &f, nil
}

// ApplyEnv overrides f with any BIDICHECK_* variables that are set.
func ApplyEnv(f *File) error {
	if err := env.Parse(f); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	return nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if len(f.Patterns) == 0 {
		f.Patterns = StringOrArray{"./..."}
	}

	if f.Format == "" {
		f.Format = FormatText
	}

	if f.Concurrency == 0 {
		f.Concurrency = runtime.GOMAXPROCS(0)
	}

	if f.PartialThreshold == 0 {
		f.PartialThreshold = analyze.DefaultPartialThreshold
	}

	if f.LogLevel == "" {
		f.LogLevel = "info"
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
