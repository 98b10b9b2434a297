// Package bidi defines the bidirectional mapping contract.
//
// A bidirectional mapping is a read-only mapping from keys to values that is
// injective and exposes its inverse (value to key) as a mapping of its own.
// The package does not ship a container; it provides:
//   - Core, Mapping, BidirectionalMapping: the contract as generic interfaces
//   - Mixin: the derived read-only surface built from the three primitives
//   - InvertedItems, Inverted: iteration of the inverse without swapping
//   - Recognizer: structural recognition of foreign types via reflection
//
// Key invariants for every BidirectionalMapping m:
//   - m.Inverse().Inverse() is m
//   - (k, v) is an entry of m if and only if (v, k) is an entry of m.Inverse()
package bidi
