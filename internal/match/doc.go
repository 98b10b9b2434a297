// Package match finds declared method names that look like misspelled or
// abbreviated capability names, so diagnostics can suggest a rename.
//
// Key functions:
//   - NormalizeIdent: folds case and strips separators
//   - Levenshtein: computes edit distance between strings
//   - Score: similarity of two identifiers
//   - NearMisses: ranks declared names against a wanted name
package match
