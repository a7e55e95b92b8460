package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/lockwalk/internal/config"
)

func valid() config.Config {
	return config.Config{
		Output:     config.DefaultOutput,
		Password:   "hunter2",
		Iterations: config.DefaultIterations,
		MaxSize:    config.DefaultMaxSize,
		Include:    config.DefaultInclude,
		Exclude:    config.DefaultExclude,
		Suffix:     config.DefaultSuffix,
		Source:     "testdata",
	}
}

func TestValidate_Defaults(t *testing.T) {
	t.Parallel()

	cfg := valid()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, int64(10*1024*1024*1024), cfg.MaxBytes())
}

func TestValidate_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"missing password", func(c *config.Config) { c.Password = "" }},
		{"missing source", func(c *config.Config) { c.Source = "" }},
		{"missing output", func(c *config.Config) { c.Output = "" }},
		{"zero iterations", func(c *config.Config) { c.Iterations = 0 }},
		{"negative iterations", func(c *config.Config) { c.Iterations = -1 }},
		{"unparseable max-size", func(c *config.Config) { c.MaxSize = "lots" }},
		{"zero max-size", func(c *config.Config) { c.MaxSize = "0" }},
		{"path in include list", func(c *config.Config) { c.Include = []string{"docs/.txt"} }},
		{"glob in exclude list", func(c *config.Config) { c.Exclude = []string{".tx?"} }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_HumanizedSizes(t *testing.T) {
	t.Parallel()

	tests := map[string]int64{
		"1KiB":  1024,
		"10GiB": 10 * 1024 * 1024 * 1024,
		"500":   500,
		"2MB":   2_000_000,
	}

	for in, want := range tests {
		cfg := valid()
		cfg.MaxSize = in
		require.NoError(t, cfg.Validate(), "max-size %q", in)
		assert.Equal(t, want, cfg.MaxBytes(), "max-size %q", in)
	}
}

func TestValidate_WildcardAllowedInLists(t *testing.T) {
	t.Parallel()

	cfg := valid()
	cfg.Include = []string{"*"}
	cfg.Exclude = []string{"*"}
	assert.NoError(t, cfg.Validate())
}
