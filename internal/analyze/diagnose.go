package analyze

import (
	"fmt"
	"strings"

	"bidimap/bidi"
	"bidimap/internal/diagnostic"
	"bidimap/internal/match"
)

// Diagnostic codes produced by Diagnose.
const (
	CodePartial         = "partial-conformance"
	CodeDeferred        = "deferred"
	CodeExplicit        = "explicit-contract"
	CodeNoInvertedItems = "no-inverted-items"
)

// Diagnose turns the results of s into diagnostics. Partial conformance is a
// warning; everything else is informational. Unrelated types are skipped.
func (s *Scan) Diagnose(threshold int) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	shortcut := bidi.InvertedItemsCapability().Method

	for i := range s.Results {
		r := &s.Results[i]
		typeName := r.ID.String()

		switch r.Status(threshold) {
		case StatusPartial:
			suggestions := make([]string, 0, len(r.Missing))
			for _, name := range r.Missing {
				suggestions = append(suggestions, suggest(r, name))
			}
			d.AddWarning(CodePartial,
				fmt.Sprintf("provides %d of %d capabilities, missing %s",
					len(r.Present), len(s.Names), strings.Join(r.Missing, ", ")),
				typeName, "", suggestions...)

		case StatusDeferred:
			d.AddInfo(CodeDeferred,
				fmt.Sprintf("%s type has no chain to inspect", r.Kind), typeName, "")

		case StatusConforming:
			if r.Explicit {
				d.AddInfo(CodeExplicit, "embeds "+bidi.ContractName, typeName, "")
			}
			if _, ok := r.Provider(shortcut); !ok {
				d.AddInfo(CodeNoInvertedItems,
					"inverse iteration falls back to swapping entries", typeName, shortcut)
			}

		case StatusUnrelated:
			// Nothing to report
		}
	}

	return d
}

// suggest proposes a fix for a missing capability, preferring the rename of
// a declared method that looks like a misspelling of it.
func suggest(r *Result, name string) string {
	var declared []string
	for _, l := range r.Chain {
		declared = append(declared, l.Methods...)
	}

	if best, ok := match.Best(name, declared); ok {
		return fmt.Sprintf("rename %s to %s", best.Name, name)
	}

	return "declare " + name
}
