package bidi

import "iter"

const (
	// ContractType is the name of the contract interface.
	ContractType = "BidirectionalMapping"
	// ContractName is the qualified name of the bidirectional mapping contract.
	ContractName = "bidi." + ContractType
)

// Core is the minimal read-only mapping surface. Everything else a Mapping
// offers can be derived from these three primitives (see Mixin).
type Core[K, V comparable] interface {
	// Lookup returns the value stored for key and whether it was present.
	Lookup(key K) (V, bool)
	// Iter yields every key exactly once.
	Iter() iter.Seq[K]
	// Len returns the number of entries.
	Len() int
}

// Mapping is a read-only mapping: the primitives plus the derived surface.
type Mapping[K, V comparable] interface {
	Core[K, V]

	Contains(key K) bool
	Keys() iter.Seq[K]
	Items() iter.Seq2[K, V]
	Values() iter.Seq[V]
	Get(key K, def V) V
	Equal(other Core[K, V]) bool
	NotEqual(other Core[K, V]) bool
}

// BidirectionalMapping is a Mapping that also exposes its inverse.
//
// Inverse has no default implementation: a type that does not declare it is
// not a BidirectionalMapping. Implementations holding a stored inverse should
// implement InvertedItems by delegating to the package-level InvertedItems.
type BidirectionalMapping[K, V comparable] interface {
	Mapping[K, V]

	// Inverse returns the inverse mapping. Inverse().Inverse() must return
	// the receiver itself.
	Inverse() BidirectionalMapping[V, K]

	// InvertedItems yields the entries of the inverse mapping.
	InvertedItems() iter.Seq2[V, K]
}
