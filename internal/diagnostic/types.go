package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"bidimap/internal/common"
)

// Severity ranks a finding. Higher is worse.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

var severityNames = [...]string{
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return common.UnknownStr
	}

	return severityNames[s]
}

// Diagnostic is one finding about a scanned type or a config key.
type Diagnostic struct {
	Severity Severity
	Code     string // stable identifier, e.g. "partial-conformance"
	Message  string
	// Type is the qualified name of the type the finding is about, if any.
	Type string
	// Member is the method or config key the finding is about, if any.
	Member      string
	Suggestions []string
}

// String renders d as "[type] member: [code] message", leaving out the
// parts that are empty.
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Type != "" {
		fmt.Fprintf(&b, "[%s]", d.Type)
	}
	if d.Member != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.Member)
	}
	if b.Len() > 0 {
		b.WriteString(": ")
	}
	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}
	b.WriteString(d.Message)

	return b.String()
}

// Diagnostics collects findings by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

func (d *Diagnostics) add(sev Severity, code, message, typeName, member string, suggestions []string) {
	f := Diagnostic{
		Severity:    sev,
		Code:        code,
		Message:     message,
		Type:        typeName,
		Member:      member,
		Suggestions: suggestions,
	}

	switch sev {
	case SeverityError:
		d.Errors = append(d.Errors, f)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, f)
	default:
		d.Infos = append(d.Infos, f)
	}
}

// AddError records a problem that makes the input unusable.
func (d *Diagnostics) AddError(code, message, typeName, member string, suggestions ...string) {
	d.add(SeverityError, code, message, typeName, member, suggestions)
}

// AddWarning records a type that almost satisfies the contract.
func (d *Diagnostics) AddWarning(code, message, typeName, member string, suggestions ...string) {
	d.add(SeverityWarning, code, message, typeName, member, suggestions)
}

// AddInfo records a note that needs no action.
func (d *Diagnostics) AddInfo(code, message, typeName, member string, suggestions ...string) {
	d.add(SeverityInfo, code, message, typeName, member, suggestions)
}

// Merge appends every finding of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every finding, most severe first.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid reports whether no errors were recorded. Warnings and infos do not
// count.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Error joins the error findings with "; ", or returns nil if there are none.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	msgs := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		msgs[i] = e.String()
	}

	return errors.New(strings.Join(msgs, "; "))
}
