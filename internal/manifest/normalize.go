package manifest

import "strings"

// StripLeadingSlash removes a single leading "/" from path
func StripLeadingSlash(path string) string {
	return strings.TrimPrefix(path, "/")
}

// NormalizeAll returns a copy of paths with StripLeadingSlash applied to each
func NormalizeAll(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = StripLeadingSlash(p)
	}
	return out
}
