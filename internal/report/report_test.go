package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"bidimap/internal/analyze"
)

func loadScan(t *testing.T) *analyze.Scan {
	t.Helper()

	scan, err := analyze.NewAnalyzer().LoadPackages(context.Background(), "bidimap/examples/shapes")
	require.NoError(t, err)

	return scan
}

func TestBuild(t *testing.T) {
	r := Build(loadScan(t), Options{Threshold: analyze.DefaultPartialThreshold})

	assert.Equal(t, Summary{
		Packages:   1,
		Types:      10,
		Conforming: 6,
		Partial:    1,
		Deferred:   1,
		Unrelated:  2,
	}, r.Summary)

	// Unrelated types are counted but not listed
	assert.Len(t, r.Types, 8)

	var partial *Entry
	for i := range r.Types {
		if r.Types[i].Status == "partial" {
			partial = &r.Types[i]
		}
	}
	require.NotNil(t, partial)
	assert.Equal(t, "bidimap/examples/shapes.Partial", partial.Type)
	assert.Equal(t, []string{"Inverse"}, partial.Missing)
	assert.Equal(t, "bidi.Mixin[string, int]", partial.Providers["Values"])
	assert.Equal(t, "shapes.Partial", partial.Providers["Lookup"])

	require.NotEmpty(t, r.Diagnostics)
	assert.Equal(t, "warning", r.Diagnostics[0].Severity)
	assert.Equal(t, analyze.CodePartial, r.Diagnostics[0].Code)
}

func TestBuild_Unrelated(t *testing.T) {
	r := Build(loadScan(t), Options{Threshold: analyze.DefaultPartialThreshold, Unrelated: true})
	assert.Len(t, r.Types, 10)
}

func TestReport_Failed(t *testing.T) {
	r := Build(loadScan(t), Options{Threshold: analyze.DefaultPartialThreshold})

	assert.True(t, r.Failed(true))
	assert.False(t, r.Failed(false))
	assert.False(t, (&Report{}).Failed(true))
}

func TestWriteText(t *testing.T) {
	r := Build(loadScan(t), Options{Threshold: analyze.DefaultPartialThreshold})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r, "text"))
	out := buf.String()

	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "shapes.Wrapped")
	assert.Contains(t, out, "frozen.Bidict[string, int] > bidi.Mixin[string, int]")
	assert.Contains(t, out, "bidimap/examples/shapes.Partial: warning: [partial-conformance]")
	assert.Contains(t, out, "10 types in 1 packages: 6 conforming, 1 partial, 1 deferred, 2 unrelated")
	assert.NotContains(t, out, "shapes.Record")
}

func TestWriteYAML(t *testing.T) {
	r := Build(loadScan(t), Options{Threshold: analyze.DefaultPartialThreshold})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r, "yaml"))

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, r.Summary, decoded.Summary)
	assert.Equal(t, r.Required, decoded.Required)
	assert.Contains(t, buf.String(), "status: deferred")
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, &Report{}, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
}
