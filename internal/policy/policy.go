// Package policy decides which files are eligible for encryption.
//
// Classification is a pure function of the file snapshot and the configured
// rules. It never touches the filesystem and never fails.
package policy

import (
	"github.com/idelchi/lockwalk/pkg/extset"
)

// Classification reasons, recorded verbatim in the run log.
const (
	ReasonZeroLength   = "zero-length"
	ReasonTooLarge     = "too-large"
	ReasonExcludedExt  = "excluded-ext"
	ReasonIncludeAll   = "include-all"
	ReasonIncludeMatch = "include-match"
	ReasonNotIncluded  = "not-in-include-list"
)

// Candidate is a read-only snapshot of a file taken at enumeration time.
// It is not re-validated if the filesystem changes during the run.
type Candidate struct {
	// Path is the file's path as discovered.
	Path string

	// Size in bytes at enumeration time.
	Size int64

	// Ext is the normalized extension (lower-case, dot-prefixed).
	Ext string
}

// NewCandidate snapshots a discovered file, normalizing its extension.
func NewCandidate(path string, size int64) Candidate {
	return Candidate{
		Path: path,
		Size: size,
		Ext:  extset.Of(path),
	}
}

// Rules is the selection policy for one run. Built once, immutable thereafter.
type Rules struct {
	Include *extset.Set
	Exclude *extset.Set
	MaxSize int64
}

// Classify evaluates the selection rules in order; the first match wins.
// The exclude set takes precedence over the include set, wildcard included.
func Classify(candidate Candidate, rules Rules) (eligible bool, reason string) {
	switch {
	case candidate.Size == 0:
		return false, ReasonZeroLength
	case candidate.Size > rules.MaxSize:
		return false, ReasonTooLarge
	case rules.Exclude.Contains(candidate.Ext):
		return false, ReasonExcludedExt
	case rules.Include.IsWildcard():
		return true, ReasonIncludeAll
	case rules.Include.Contains(candidate.Ext):
		return true, ReasonIncludeMatch
	default:
		return false, ReasonNotIncluded
	}
}
