package editorconfig

import (
	"path/filepath"
	"runtime"
	"strings"
)

// pathIsInside reports whether thePath is potentialParent itself or a
// descendant of it. collectConfigFiles calls this on every ascent step
// to assert the starting directory is still reachable downward from the
// current candidate, catching a non-monotonic walk before it searches
// the wrong tree.
func pathIsInside(thePath, potentialParent string) bool {
	thePath = stripTrailingSep(thePath)
	potentialParent = stripTrailingSep(potentialParent)

	if runtime.GOOS == "windows" {
		thePath = strings.ToLower(thePath)
		potentialParent = strings.ToLower(potentialParent)
	}

	plen := len(potentialParent)
	return strings.HasPrefix(thePath, potentialParent) && (len(thePath) == plen || thePath[plen] == filepath.Separator)
}

func stripTrailingSep(thePath string) string {
	return strings.TrimRight(thePath, string(filepath.Separator))
}
