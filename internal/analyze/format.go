package analyze

import (
	"strings"
)

// ChainSeparator joins chain members in FormatChain.
const ChainSeparator = " > "

// FormatChain renders a chain as a readable path.
// Example: "shapes.Nested > shapes.Wrapped > frozen.Bidict[string, int]"
func FormatChain(chain []Link) string {
	parts := make([]string, 0, len(chain))
	for _, l := range chain {
		parts = append(parts, l.Display)
	}

	return strings.Join(parts, ChainSeparator)
}

// Providers maps every present capability name to the display name of the
// first chain member declaring it.
func (r *Result) Providers() map[string]string {
	out := make(map[string]string, len(r.Present))
	for _, name := range r.Present {
		if l, ok := r.Provider(name); ok {
			out[name] = l.Display
		}
	}

	return out
}
