// lockwalk walks a directory tree and writes encrypted copies of selected
// files under a mirrored output root, leaving the originals untouched.
package main

import (
	"os"

	"github.com/idelchi/lockwalk/internal/commands"
)

// version is set at build time.
//
//nolint:gochecknoglobals
var version = "dev"

func main() {
	if err := commands.NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}
