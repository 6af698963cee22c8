package common

import (
	"path"
	"regexp"
)

var majorVersionRE = regexp.MustCompile(`^v[0-9]+$`)

// PkgAlias returns the default import alias for a package path: its last
// element, skipping a trailing major version ("example.com/lib/v2" is "lib").
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if dir := path.Dir(pkgPath); majorVersionRE.MatchString(base) && dir != "." {
		return path.Base(dir)
	}

	return base
}
