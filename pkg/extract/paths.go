package extract

import "strings"

// PathDepth is the nesting depth of a path: one per "." and one per "[".
func PathDepth(p string) int {
	return strings.Count(p, ".") + strings.Count(p, "[")
}

// ParentPrefix groups a path under the text before its last ".". Paths
// without a "." are their own group, so "a[0]" and "a[1]" stay distinct.
func ParentPrefix(p string) string {
	if i := strings.LastIndexByte(p, '.'); i >= 0 {
		return p[:i]
	}
	return p
}

// StructuralParent returns the path that directly contains p: the text
// before the last "." if there is one, otherwise the text before the last
// "[". Root-level keys have no parent.
func StructuralParent(p string) (string, bool) {
	if i := strings.LastIndexByte(p, '.'); i >= 0 {
		return p[:i], true
	}
	if i := strings.LastIndexByte(p, '['); i >= 0 {
		return p[:i], true
	}
	return "", false
}
