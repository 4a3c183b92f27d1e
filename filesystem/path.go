package filesystem

import (
	"slices"
	"strings"
)

// PathSeparator separates segments in a textual path
const PathSeparator = "/"

// Path is an ordered sequence of segment names relative to the root
type Path []string

// ParsePath splits s on [PathSeparator]. No validation is done; see [Path.Validate].
func ParsePath(s string) Path {
	return strings.Split(s, PathSeparator)
}

// String joins the segments back into their textual form
func (p Path) String() string {
	return strings.Join(p, PathSeparator)
}

// Split returns the parent path (all but the last segment) and the last segment.
// An empty path returns (nil, "").
func (p Path) Split() (Path, string) {
	if len(p) == 0 {
		return nil, ""
	}
	return p[:len(p)-1], p[len(p)-1]
}

// Validate reports the first problem with p, or "" if every segment is a
// non-empty name.
func (p Path) Validate() string {
	if len(p) == 0 {
		return "empty path"
	}
	for _, seg := range p {
		if seg == "" {
			return "empty path segment"
		}
	}
	return ""
}

// HasPrefix reports whether prefix names p itself or one of its ancestors
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	return slices.Equal(p[:len(prefix)], prefix)
}
