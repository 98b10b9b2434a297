// Package analyze recognizes bidirectional mappings in Go source.
//
// It loads packages with golang.org/x/tools/go/packages and, for every
// exported named type, walks the chain of the type and the types embedded in
// it using go/types. A type conforms when each required capability name is
// declared directly on some member of its chain, or when the chain contains
// the contract interface itself.
//
// Key types:
//   - TypeID: package import path + type name
//   - Link: one chain member and the methods it declares
//   - Result: verdict, present and missing capabilities for a type
//   - Scan: all results of one load
package analyze
