package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/internal/report"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.NoError(t, c.Validate())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "percolate.yaml")
	body := "size: 64\ntrials: 250\nsampler: shrinking\nlog_level: debug\nseed: 99\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("PERCOLATE_TRIALS", "30")

	c, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 64, c.Size)
	assert.Equal(t, 30, c.Trials, "env beats file")
	assert.Equal(t, "shrinking", c.Sampler)
	assert.Equal(t, int64(99), c.Seed)

	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"size":      func(c *Config) { c.Size = 1 },
		"trials":    func(c *Config) { c.Trials = 1 },
		"nodes":     func(c *Config) { c.Nodes = -2 },
		"sampler":   func(c *Config) { c.Sampler = "reservoir" },
		"log level": func(c *Config) { c.LogLevel = "loud" },
		"format":    func(c *Config) { c.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidate_FormatMatchesRenderer(t *testing.T) {
	for _, f := range []string{"text", "JSON", "Yaml"} {
		c := Default()
		c.Format = f
		assert.NoError(t, c.Validate(), f)
	}
	c := Default()
	c.Format = "xml"
	assert.ErrorIs(t, c.Validate(), report.ErrUnknownFormat)
}
