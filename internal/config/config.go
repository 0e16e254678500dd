// Package config loads crust-trust settings from defaults, an optional TOML
// file and CRUST_TRUST_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. CRUST_TRUST_CARGO_BINARY.
const EnvPrefix = "CRUST_TRUST"

// Config holds application configuration.
type Config struct {
	Cargo     CargoConfig
	Build     BuildConfig
	Toolchain ToolchainConfig
}

// CargoConfig selects the cargo executable.
type CargoConfig struct {
	Binary string
}

// BuildConfig controls crate scaffolding.
type BuildConfig struct {
	Jobs int
}

// ToolchainConfig controls the post-scaffold cargo steps.
type ToolchainConfig struct {
	Steps    []string
	Rollback bool
	GraphOut string `mapstructure:"graph_out"`
}

// DefaultSteps is the full toolchain sequence.
var DefaultSteps = []string{"check", "deps", "update", "bench", "metadata"}

// Load reads configuration. path may name a config file explicitly; otherwise
// $CRUST_TRUST_CONFIG or ~/.config/crust-trust/config.toml is used if present.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("cargo.binary", "cargo")
	v.SetDefault("build.jobs", 0)
	v.SetDefault("toolchain.steps", DefaultSteps)
	v.SetDefault("toolchain.rollback", false)
	v.SetDefault("toolchain.graph_out", "")

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "crust-trust"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	// Env values for list keys arrive as one string.
	c.Toolchain.Steps = splitList(c.Toolchain.Steps)
	return c, nil
}

func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
			out = append(out, part)
		}
	}
	return out
}
