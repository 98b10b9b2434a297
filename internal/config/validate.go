package config

import (
	"fmt"
	"slices"

	"go.uber.org/zap/zapcore"

	"bidimap/bidi"
	"bidimap/internal/diagnostic"
	"bidimap/utils"
)

// Validate checks f for values bidicheck cannot act on.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("config_is_nil", "config is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported version %q", f.Version), "", "version")
	}

	if !slices.Contains([]string{FormatText, FormatYAML}, f.Format) {
		res.AddError("invalid_format", fmt.Sprintf("unknown format %q", f.Format), "", "format",
			FormatText, FormatYAML)
	}

	if f.Concurrency < 0 {
		res.AddError("invalid_concurrency", "concurrency must not be negative", "", "concurrency")
	}

	names := len(bidi.CapabilityNames())
	if !utils.IsInRange(1, f.PartialThreshold, names) {
		res.AddError("invalid_threshold",
			fmt.Sprintf("partial_threshold must be between 1 and %d", names), "", "partial_threshold")
	}

	for i, p := range f.Patterns {
		if p == "" {
			res.AddError("empty_pattern", fmt.Sprintf("pattern %d is empty", i), "", "patterns")
		}
	}

	if _, err := zapcore.ParseLevel(f.LogLevel); err != nil {
		res.AddError("invalid_log_level", err.Error(), "", "log_level")
	}

	return res
}
