package bidi

import (
	"slices"
)

//go:generate go tool stringer -type=Kind,Verdict -linecomment -output=enum_string.go

// Kind classifies a capability.
type Kind int

const (
	KindAccessor     Kind = iota // accessor
	KindPrimitive                // primitive
	KindMixin                    // mixin
	KindOptimization             // optimization
)

// Capability is one member a type must expose to be recognized as a
// bidirectional mapping.
type Capability struct {
	Name   string // e.g. "lookup"
	Method string // Go method name, e.g. "Lookup"
	Kind   Kind
}

// capabilitySet is fixed at compile time and never mutated.
var capabilitySet = [...]Capability{
	{Name: "inverse", Method: "Inverse", Kind: KindAccessor},

	{Name: "lookup", Method: "Lookup", Kind: KindPrimitive},
	{Name: "iterate", Method: "Iter", Kind: KindPrimitive},
	{Name: "length", Method: "Len", Kind: KindPrimitive},

	{Name: "contains", Method: "Contains", Kind: KindMixin},
	{Name: "keys", Method: "Keys", Kind: KindMixin},
	{Name: "items", Method: "Items", Kind: KindMixin},
	{Name: "values", Method: "Values", Kind: KindMixin},
	{Name: "get", Method: "Get", Kind: KindMixin},
	{Name: "equal", Method: "Equal", Kind: KindMixin},
	{Name: "not-equal", Method: "NotEqual", Kind: KindMixin},
}

// invertedItems is an optimization, not a requirement of recognition.
var invertedItems = Capability{Name: "inverted-items", Method: "InvertedItems", Kind: KindOptimization}

// Capabilities returns a copy of the capability set.
func Capabilities() []Capability {
	return slices.Clone(capabilitySet[:])
}

// InvertedItemsCapability describes InvertedItems. Recognizers only require
// it when asked to (see RequireInvertedItems).
func InvertedItemsCapability() Capability {
	return invertedItems
}

// CapabilityNames returns the sorted method names of the capability set.
func CapabilityNames() []string {
	names := make([]string, 0, len(capabilitySet))
	for _, c := range capabilitySet {
		names = append(names, c.Method)
	}
	slices.Sort(names)

	return names
}
