package config

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
)

// Defaults applied when the corresponding flag or environment variable is unset.
const (
	// DefaultIterations is the PBKDF2 iteration count.
	DefaultIterations = 200_000
	// DefaultMaxSize is the largest file that will be encrypted.
	DefaultMaxSize = "10GiB"
	// DefaultSuffix is appended to the full original filename of every output file.
	DefaultSuffix = ".lock"
	// DefaultOutput is the output root, relative to the working directory.
	DefaultOutput = "encrypted"
)

// DefaultInclude matches every extension.
//
//nolint:gochecknoglobals
var DefaultInclude = []string{"*"}

// DefaultExclude skips common binary/system extensions and the tool's own
// output suffix, so re-running over a partially mirrored tree never
// re-encrypts its own output.
//
//nolint:gochecknoglobals
var DefaultExclude = []string{".exe", ".dll", ".sys", ".msi", DefaultSuffix}

// Config holds the runtime configuration for a single run.
// Constructed once at startup and immutable after Validate.
type Config struct {
	// Common flags
	Output     string   `mapstructure:"output"     validate:"required"`
	Password   string   `mapstructure:"password"   validate:"required"`
	Iterations int      `mapstructure:"iterations" validate:"gt=0"`
	MaxSize    string   `mapstructure:"max-size"   validate:"required"`
	Include    []string `mapstructure:"include"    validate:"extlist"`
	Exclude    []string `mapstructure:"exclude"    validate:"extlist"`
	Suffix     string   `mapstructure:"suffix"     validate:"required"`
	Dry        bool     `mapstructure:"dry-run"`
	Checksum   bool     `mapstructure:"checksum"`
	Quiet      bool     `mapstructure:"quiet"`
	Stats      bool     `mapstructure:"stats"`

	// Positional argument
	Source string `validate:"required"`

	// Parsed form of MaxSize, populated by Validate.
	maxBytes int64
}

// Validate validates the configuration against the struct tags.
func (c *Config) Validate() error {
	validate := validator.New()

	if err := registerExtList(validate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	// Additional max-size validation: accepts humanized sizes like "10GiB".
	size, err := humanize.ParseBytes(c.MaxSize)
	if err != nil {
		return fmt.Errorf("invalid max-size %q: %w", c.MaxSize, err)
	}

	if size == 0 || size > math.MaxInt64 {
		return fmt.Errorf("max-size %q is out of range", c.MaxSize)
	}

	c.maxBytes = int64(size)

	return nil
}

// MaxBytes returns the parsed maximum file size in bytes.
// Only meaningful after a successful Validate.
func (c *Config) MaxBytes() int64 {
	return c.maxBytes
}
