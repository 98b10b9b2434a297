package common

import "path"

// UnknownStr is the String() of enum values outside their defined range.
const UnknownStr = "unknown"

// PkgAlias returns the default alias of an import path, its last element,
// or "" for an empty path.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}
