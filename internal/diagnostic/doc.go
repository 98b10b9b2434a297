// Package diagnostic provides structured findings for bidicheck.
//
// Key capabilities:
//   - Partial conformance warnings with the missing capabilities
//   - Notes on deferred recognition and explicit contract users
//   - Configuration validation errors
package diagnostic
