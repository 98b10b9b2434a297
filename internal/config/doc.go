// Package config loads bidicheck configuration.
//
// Configuration comes from a YAML file (by default .bidicheck.yaml) and is
// then overridden by BIDICHECK_* environment variables:
//
//	version: "1"
//	patterns: ["./..."]          # or a single string
//	format: text                 # text | yaml
//	strict: false                # fail on partial conformance
//	require_inverted: false      # also require InvertedItems
//	concurrency: 4               # packages evaluated at once
//	partial_threshold: 3         # names needed to report "partial"
//	log_level: info
package config
