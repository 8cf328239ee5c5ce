// Package config loads the table-generator CLI's configuration from a
// file, environment variables (SHANTEN_*), and flags, in that precedence
// order, via viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tsumogiri/shanten/internal/tablegen"
)

// Config holds everything cmd/tablegen needs to run one generation pass.
type Config struct {
	// OutputDir is where the numbered- and honor-suit table files and the
	// run manifest are written.
	OutputDir string `mapstructure:"outputDir"`
	// Workers caps how many goroutines the table builders run
	// concurrently; 0 means use the host's CPU count.
	Workers int `mapstructure:"workers"`
	// Convention selects between the two distance conventions
	// BuildAll's Convention parameter exposes (spec.md §9's resolved
	// open question).
	Convention string `mapstructure:"convention"`
	// LogLevel is a charmbracelet/log level name ("debug", "info",
	// "warn", "error").
	LogLevel string `mapstructure:"logLevel"`
}

// Defaults returns the configuration used when no file, environment
// variable, or flag overrides a field.
func Defaults() Config {
	return Config{
		OutputDir:  "tables",
		Workers:    0,
		Convention: "standard",
		LogLevel:   "info",
	}
}

// Load reads configFile (if non-empty), then environment variables
// prefixed SHANTEN_, then flags, into a Config seeded with Defaults.
// Flags take precedence over the environment, which takes precedence
// over the file.
func Load(configFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("outputDir", defaults.OutputDir)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("convention", defaults.Convention)
	v.SetDefault("logLevel", defaults.LogLevel)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix("SHANTEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// DistanceConvention resolves cfg's Convention field into the
// tablegen.Convention value BuildAll expects.
func (cfg Config) DistanceConvention() (tablegen.Convention, error) {
	switch cfg.Convention {
	case "standard", "":
		return tablegen.ConventionStandard, nil
	case "nyanten":
		return tablegen.ConventionNyanten, nil
	default:
		return 0, fmt.Errorf("config: unknown convention %q", cfg.Convention)
	}
}
