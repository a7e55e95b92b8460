// Package extset implements normalized file-extension sets.
//
// Extensions compare case-insensitively and always carry a leading dot:
// "TXT", ".txt" and " txt " all normalize to ".txt". The single member "*"
// is a wildcard matching any extension. Empty or whitespace-only input
// normalizes to the empty string, which represents extensionless files.
package extset

import (
	"path/filepath"
	"strings"
)

// Wildcard is the sentinel member matching any extension.
const Wildcard = "*"

// Normalize lower-cases ext and enforces a leading dot.
// Whitespace-only input normalizes to the empty string.
// The wildcard sentinel passes through unchanged.
func Normalize(ext string) string {
	ext = strings.TrimSpace(strings.ToLower(ext))

	if ext == "" || ext == Wildcard {
		return ext
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}

// Of returns the normalized extension of path (".txt" for "A/B.TXT",
// "" for extensionless files).
func Of(path string) string {
	return Normalize(filepath.Ext(path))
}

// Set is an immutable set of normalized extensions, built once per run.
type Set struct {
	members  map[string]struct{}
	wildcard bool
}

// New builds a Set from raw extension strings, normalizing each member.
func New(exts ...string) *Set {
	set := &Set{members: make(map[string]struct{}, len(exts))}

	for _, ext := range exts {
		ext = Normalize(ext)

		if ext == Wildcard {
			set.wildcard = true

			continue
		}

		set.members[ext] = struct{}{}
	}

	return set
}

// Contains reports whether ext is a member. A wildcard set contains
// every extension. The argument is normalized before lookup.
func (s *Set) Contains(ext string) bool {
	if s.wildcard {
		return true
	}

	_, ok := s.members[Normalize(ext)]

	return ok
}

// IsWildcard reports whether the set carries the wildcard sentinel.
func (s *Set) IsWildcard() bool {
	return s.wildcard
}

// Len returns the number of explicit members, excluding the wildcard.
func (s *Set) Len() int {
	return len(s.members)
}
