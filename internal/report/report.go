// Package report renders scan results as text or YAML.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"bidimap/internal/analyze"
	"bidimap/internal/config"
)

// Report is the rendered outcome of a scan.
type Report struct {
	Required    []string  `yaml:"required"`
	Summary     Summary   `yaml:"summary"`
	Types       []Entry   `yaml:"types,omitempty"`
	Diagnostics []Finding `yaml:"diagnostics,omitempty"`
}

// Summary counts types per status.
type Summary struct {
	Packages   int `yaml:"packages"`
	Types      int `yaml:"types"`
	Conforming int `yaml:"conforming"`
	Partial    int `yaml:"partial"`
	Deferred   int `yaml:"deferred"`
	Unrelated  int `yaml:"unrelated"`
}

// Entry describes one type.
type Entry struct {
	Type      string            `yaml:"type"`
	Status    string            `yaml:"status"`
	Kind      string            `yaml:"kind"`
	Position  string            `yaml:"position,omitempty"`
	Explicit  bool              `yaml:"explicit,omitempty"`
	Chain     []string          `yaml:"chain,omitempty"`
	Missing   []string          `yaml:"missing,omitempty"`
	Providers map[string]string `yaml:"providers,omitempty"`
}

// Finding is a diagnostic in report form.
type Finding struct {
	Severity    string   `yaml:"severity"`
	Code        string   `yaml:"code"`
	Type        string   `yaml:"type,omitempty"`
	Member      string   `yaml:"member,omitempty"`
	Message     string   `yaml:"message"`
	Suggestions []string `yaml:"suggestions,omitempty"`
}

// Options controls what Build includes.
type Options struct {
	// Threshold is passed to Result.Status.
	Threshold int
	// Unrelated includes unrelated types in Types. They are always counted.
	Unrelated bool
}

// Build assembles a Report from scan.
func Build(scan *analyze.Scan, opts Options) *Report {
	r := &Report{
		Required: scan.Names,
		Summary:  Summary{Packages: len(scan.Packages), Types: len(scan.Results)},
	}

	for i := range scan.Results {
		res := &scan.Results[i]
		status := res.Status(opts.Threshold)

		switch status {
		case analyze.StatusConforming:
			r.Summary.Conforming++
		case analyze.StatusPartial:
			r.Summary.Partial++
		case analyze.StatusDeferred:
			r.Summary.Deferred++
		case analyze.StatusUnrelated:
			r.Summary.Unrelated++
			if !opts.Unrelated {
				continue
			}
		}

		entry := Entry{
			Type:     res.ID.String(),
			Status:   status.String(),
			Kind:     res.Kind.String(),
			Position: res.Position,
			Explicit: res.Explicit,
		}
		for _, l := range res.Chain {
			entry.Chain = append(entry.Chain, l.Display)
		}
		if status == analyze.StatusPartial {
			entry.Missing = res.Missing
			entry.Providers = res.Providers()
		}

		r.Types = append(r.Types, entry)
	}

	diags := scan.Diagnose(opts.Threshold)
	for _, d := range diags.All() {
		r.Diagnostics = append(r.Diagnostics, Finding{
			Severity:    d.Severity.String(),
			Code:        d.Code,
			Type:        d.Type,
			Member:      d.Member,
			Message:     d.Message,
			Suggestions: d.Suggestions,
		})
	}

	return r
}

// Failed reports whether the scan should fail: in strict mode any partial
// conformance is a failure.
func (r *Report) Failed(strict bool) bool {
	return strict && r.Summary.Partial > 0
}

// Write renders r in the given format.
func Write(w io.Writer, r *Report, format string) error {
	switch format {
	case config.FormatYAML:
		return WriteYAML(w, r)
	case config.FormatText, "":
		return WriteText(w, r)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// WriteYAML renders r as a YAML document.
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return enc.Close()
}

// WriteText renders r as an aligned table followed by diagnostics and a
// summary line.
func WriteText(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if len(r.Types) > 0 {
		fmt.Fprintln(tw, "STATUS\tTYPE\tCHAIN")
		for _, e := range r.Types {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Status, e.Type, chainString(e.Chain))
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if len(r.Diagnostics) > 0 {
		fmt.Fprintln(w)
	}
	for _, d := range r.Diagnostics {
		line := fmt.Sprintf("%s: [%s] %s", d.Severity, d.Code, d.Message)
		if d.Member != "" {
			line = d.Member + ": " + line
		}
		if d.Type != "" {
			line = d.Type + ": " + line
		}
		fmt.Fprintln(w, line)
	}

	s := r.Summary
	_, err := fmt.Fprintf(w, "\n%d types in %d packages: %d conforming, %d partial, %d deferred, %d unrelated\n",
		s.Types, s.Packages, s.Conforming, s.Partial, s.Deferred, s.Unrelated)

	return err
}

func chainString(chain []string) string {
	if len(chain) < 2 {
		return "-"
	}

	return strings.Join(chain[1:], analyze.ChainSeparator)
}
