package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/lockwalk/internal/config"
	"github.com/idelchi/lockwalk/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] source",
		Aliases: []string{"enc"},
		Short:   "Encrypt a directory tree into a mirrored output root",
		Args:    cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(_ *cobra.Command, args []string) error {
			// Unmarshal all config (from env vars and flags) into struct
			var cfg config.Config
			if err := viper.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("parsing config: %w", err)
			}

			cfg.Source = args[0]

			if cfg.Password == "" {
				password, err := promptPassword()
				if err != nil {
					return err
				}

				cfg.Password = password
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return logic.Run(&cfg)
		},
	}

	cmd.Flags().StringP("output", "o", config.DefaultOutput, "Output root for encrypted copies")
	cmd.Flags().StringP("password", "p", "", "Password for key derivation (prompted when omitted)")
	cmd.Flags().IntP("iterations", "i", config.DefaultIterations, "PBKDF2 iteration count")
	cmd.Flags().String("max-size", config.DefaultMaxSize, "Largest file to encrypt (e.g. 500MiB, 10GiB)")
	cmd.Flags().StringSlice("include", config.DefaultInclude, "Extensions to encrypt ('*' for all)")
	cmd.Flags().StringSlice("exclude", config.DefaultExclude, "Extensions to skip (always wins over include)")
	cmd.Flags().String("suffix", config.DefaultSuffix, "Suffix appended to encrypted file names")
	cmd.Flags().BoolP("dry-run", "n", false, "Preview outcomes without writing anything")
	cmd.Flags().Bool("checksum", false, "Record a BLAKE3 plaintext checksum in the run log")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress non-error output")
	cmd.Flags().Bool("stats", false, "Print a summary block at the end of the run")

	return cmd
}
