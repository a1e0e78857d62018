// Package config loads the assembler's optional TOML configuration file,
// letting a project pin its Strict/AllowNonR8Base behaviour once instead of
// repeating flags on every invocation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the on-disk settings for the zkasm CLI.
type Config struct {
	Assembler struct {
		Strict         bool `toml:"strict"`
		AllowNonR8Base bool `toml:"allow_non_r8_base"`
	} `toml:"assembler"`

	Output struct {
		Directory string `toml:"directory"`
	} `toml:"output"`
}

// DefaultConfig returns the configuration the assembler uses when no config
// file is present, matching the legacy (non-strict, r8-only) behaviour.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Assembler.Strict = false
	cfg.Assembler.AllowNonR8Base = false
	cfg.Output.Directory = "."
	return cfg
}

// GetConfigPath returns ~/.config/zkasm/config.toml, falling back to
// config.toml in the working directory if the home directory can't be
// resolved.
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(homeDir, ".config", "zkasm", "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from path, returning defaults unchanged if
// the file does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}
