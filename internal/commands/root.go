package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand creates the root command with common configuration.
// Flags can also be supplied as LOCKWALK_* environment variables.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "lockwalk [flags] command [flags]",
		Short: "Bulk file encryption utility",
		Long: `Walks a source directory tree and writes an encrypted copy of each selected
file under a mirrored directory structure, without touching the originals.
Selection is driven by include/exclude extension lists and size guards; every
file encountered is accounted for in a timestamped run log.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Env binding is set up here, not in a PersistentPreRunE: subcommands
	// install their own hook for flag binding, and cobra only runs the
	// innermost non-nil hook.
	viper.SetEnvPrefix("lockwalk")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(NewEncryptCommand())

	return root
}
