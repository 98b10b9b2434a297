package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".bidicheck.yaml"

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// File is the bidicheck configuration.
//
// PartialThreshold ranges over 1..len(bidi.CapabilityNames()); zero or an
// omitted key means analyze.DefaultPartialThreshold.
type File struct {
	Version          string        `yaml:"version"`
	Patterns         StringOrArray `yaml:"patterns,omitempty"`
	Format           string        `yaml:"format,omitempty" env:"BIDICHECK_FORMAT"`
	Strict           bool          `yaml:"strict,omitempty" env:"BIDICHECK_STRICT"`
	RequireInverted  bool          `yaml:"require_inverted,omitempty" env:"BIDICHECK_REQUIRE_INVERTED"`
	Concurrency      int           `yaml:"concurrency,omitempty" env:"BIDICHECK_CONCURRENCY"`
	PartialThreshold int           `yaml:"partial_threshold,omitempty" env:"BIDICHECK_PARTIAL_THRESHOLD"`
	LogLevel         string        `yaml:"log_level,omitempty" env:"BIDICHECK_LOG"`
}

// StringOrArray accepts either a single string or a list of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}
