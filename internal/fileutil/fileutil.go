// Package fileutil provides shared path and directory helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const ownerDirPerm = 0o700

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, ownerDirPerm); err != nil {
		return fmt.Errorf("creating directory %q: %w", dir, err)
	}

	return nil
}

// MirrorPath maps a source file onto the output root, preserving its path
// relative to the source root and appending suffix to the full original
// filename (the original extension is kept, not replaced).
func MirrorPath(path, sourceRoot, outputRoot, suffix string) string {
	return filepath.Join(outputRoot, relInsensitive(path, sourceRoot)) + suffix
}

// relInsensitive strips the root prefix from path, matching the prefix
// case-insensitively so roots on case-preserving filesystems still mirror
// cleanly. Falls back to the base name when path lies outside root; two
// distinct out-of-root paths sharing a base name then map to the same
// result. The traversal only hands over paths under the source root, so
// the fallback never fires there.
func relInsensitive(path, root string) string {
	cleanPath := filepath.Clean(path)
	cleanRoot := filepath.Clean(root)

	if len(cleanPath) > len(cleanRoot) && strings.EqualFold(cleanPath[:len(cleanRoot)], cleanRoot) {
		return strings.TrimLeft(cleanPath[len(cleanRoot):], string(filepath.Separator))
	}

	if rel, err := filepath.Rel(cleanRoot, cleanPath); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}

	return filepath.Base(cleanPath)
}
