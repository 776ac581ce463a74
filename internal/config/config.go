// Package config loads CLI settings from defaults, an optional YAML file,
// PERCOLATE_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/percolate/internal/report"
	"github.com/katalvlaran/percolate/montecarlo"
	"github.com/katalvlaran/percolate/percolation"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is the prefix of environment overrides, e.g. PERCOLATE_TRIALS.
const EnvPrefix = "PERCOLATE"

// Keys shared by viper, config files and flag bindings.
const (
	KeySize     = "size"
	KeyTrials   = "trials"
	KeySeed     = "seed"
	KeySampler  = "sampler"
	KeyFormat   = "format"
	KeyLogLevel = "log_level"
	KeyTrace    = "trace"
	KeyNodes    = "nodes"
)

// Config holds every tunable of the percolate CLI.
type Config struct {
	Size     int    `mapstructure:"size"`
	Trials   int    `mapstructure:"trials"`
	Seed     int64  `mapstructure:"seed"`
	Sampler  string `mapstructure:"sampler"`
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log_level"`
	Trace    bool   `mapstructure:"trace"`
	Nodes    int    `mapstructure:"nodes"`
}

// Default returns the built-in settings. Seed 0 means "pick one from the clock".
func Default() Config {
	return Config{
		Size:     20,
		Trials:   100,
		Seed:     0,
		Sampler:  montecarlo.SamplerRejection.String(),
		Format:   "text",
		LogLevel: "info",
		Trace:    false,
		Nodes:    5,
	}
}

// SetDefaults registers Default() on v so env lookups and Unmarshal see
// every key.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeySize, d.Size)
	v.SetDefault(KeyTrials, d.Trials)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeySampler, d.Sampler)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyTrace, d.Trace)
	v.SetDefault(KeyNodes, d.Nodes)
}

// Load resolves the configuration held by v. If path is non-empty the YAML
// file is read first; a missing or malformed file is an error.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return c, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Size < percolation.MinSize {
		return fmt.Errorf("%w: size must be at least %d, was %d", ErrInvalidConfig, percolation.MinSize, c.Size)
	}
	if c.Trials < montecarlo.MinTrials {
		return fmt.Errorf("%w: trials must be at least %d, was %d", ErrInvalidConfig, montecarlo.MinTrials, c.Trials)
	}
	if c.Nodes < 0 {
		return fmt.Errorf("%w: nodes must be non-negative, was %d", ErrInvalidConfig, c.Nodes)
	}
	if _, err := montecarlo.ParseSampler(c.Sampler); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Level parses LogLevel (debug, info, warn, error).
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}
