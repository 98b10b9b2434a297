package analyze

import (
	"slices"

	"bidimap/bidi"
	"bidimap/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "bidimap/examples/frozen"
	Name    string // e.g., "Bidict"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the name qualified by the last element of the package path.
func (t TypeID) Short() string {
	if alias := common.PkgAlias(t.PkgPath); alias != "" {
		return alias + "." + t.Name
	}

	return t.Name
}

// TypeKind represents the kind of a type's underlying type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindInterface          // interface type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindMap                // map type
	TypeKindFunc               // func type
	TypeKindChan               // channel type
	TypeKindAlias              // alias of an unnamed type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindInterface:
		return "interface"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindFunc:
		return "func"
	case TypeKindChan:
		return "chan"
	case TypeKindAlias:
		return "alias"
	default:
		return common.UnknownStr
	}
}

// DefaultPartialThreshold is the number of required names a non-conforming
// type must declare to be reported as partial. It equals the number of
// primitives, so types with only a Len method stay unrelated.
const DefaultPartialThreshold = 3

// Status summarizes a Result for reporting.
type Status int

const (
	StatusUnrelated  Status = iota // declares too few capabilities to matter
	StatusDeferred                 // no chain, left to the caller's default check
	StatusPartial                  // declares some capabilities but not all
	StatusConforming               // recognized as a bidirectional mapping
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusUnrelated:
		return "unrelated"
	case StatusDeferred:
		return "deferred"
	case StatusPartial:
		return "partial"
	case StatusConforming:
		return "conforming"
	default:
		return common.UnknownStr
	}
}

// Link is one member of a type's chain.
type Link struct {
	ID      TypeID   // Empty for unnamed interfaces
	Display string   // e.g., "frozen.Bidict[string, int]"
	Kind    TypeKind // Kind of the underlying type
	Methods []string // Methods declared directly on this member, sorted
}

// Declares reports whether the member declares a method called name.
func (l Link) Declares(name string) bool {
	_, found := slices.BinarySearch(l.Methods, name)
	return found
}

// Result is the recognition outcome for one type.
type Result struct {
	ID       TypeID
	Kind     TypeKind
	Position string // file:line of the declaration
	Verdict  bidi.Verdict
	Explicit bool     // The chain contains the contract interface
	Chain    []Link   // The type itself first
	Present  []string // Required names found in the chain
	Missing  []string // Required names not found in the chain
}

// Status classifies the result. A non-conforming type counts as partial when
// it declares at least threshold of the required names.
func (r *Result) Status(threshold int) Status {
	switch r.Verdict {
	case bidi.Conforming:
		return StatusConforming
	case bidi.Deferred:
		return StatusDeferred
	}

	if threshold < 1 {
		threshold = 1
	}
	if len(r.Present) >= threshold {
		return StatusPartial
	}

	return StatusUnrelated
}

// Provider returns the first chain member declaring name.
func (r *Result) Provider(name string) (Link, bool) {
	i := slices.IndexFunc(r.Chain, func(l Link) bool { return l.Declares(name) })
	if i < 0 {
		return Link{}, false
	}

	return r.Chain[i], true
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Exported named types evaluated in this package
}

// Scan holds every result of one load.
type Scan struct {
	// Names are the required capability names the scan checked.
	Names []string
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
	// Results are sorted by TypeID.
	Results []Result
}

// NewScan creates an empty Scan for the given required names.
func NewScan(names []string) *Scan {
	return &Scan{
		Names:    slices.Clone(names),
		Packages: make(map[string]*PackageInfo),
	}
}

// Result returns the result for id.
func (s *Scan) Result(id TypeID) (Result, bool) {
	i := slices.IndexFunc(s.Results, func(r Result) bool { return r.ID == id })
	if i < 0 {
		return Result{}, false
	}

	return s.Results[i], true
}

// ByStatus returns the results with the given status.
func (s *Scan) ByStatus(status Status, threshold int) []Result {
	var out []Result
	for i := range s.Results {
		if s.Results[i].Status(threshold) == status {
			out = append(out, s.Results[i])
		}
	}

	return out
}
