// Package config manages shamir-vault CLI configuration
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds the defaults shamir-vault applies when a command's flags
// don't override them.
type Config struct {
	// DefaultPrime is the field prime used when a command omits --prime.
	DefaultPrime int32 `json:"default_prime"`

	// DefaultThreshold and DefaultShares seed the --threshold/--shares
	// flags when a command omits them.
	DefaultThreshold int `json:"default_threshold,omitempty"`
	DefaultShares    int `json:"default_shares,omitempty"`

	// OutputDir is where combine-file writes the reconstructed file when
	// a command omits --output-dir. Empty means the current directory.
	OutputDir string `json:"output_dir,omitempty"`

	// ConfigDir is where this Config was loaded from. Not serialized.
	ConfigDir string `json:"-"`
}

// DefaultPrime is the prime used when neither the config nor a flag
// supplies one. Shard payloads pack each y-value into a signed 16-bit
// slot, so every usable prime must stay below 2^15; 7919 is comfortably
// inside that range with plenty of headroom over a single byte value.
const DefaultPrime int32 = 7919

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		DefaultPrime:     DefaultPrime,
		DefaultThreshold: 3,
		DefaultShares:    5,
	}
}

// DefaultConfigDir returns the default config directory.
func DefaultConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".shamir-vault")
}

// Load loads configuration from the config directory, falling back to
// DefaultConfig if no config file has been written yet.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	configPath := filepath.Join(configDir, "config.json")
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			cfg.ConfigDir = configDir
			return &cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.ConfigDir = configDir
	return &cfg, nil
}

// Exists checks whether a config file has been saved.
func Exists(configDir string) bool {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	configPath := filepath.Join(configDir, "config.json")
	_, err := os.Stat(configPath)
	return err == nil
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	if c.ConfigDir == "" {
		c.ConfigDir = DefaultConfigDir()
	}

	if err := os.MkdirAll(c.ConfigDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	configPath := filepath.Join(c.ConfigDir, "config.json")
	return os.WriteFile(configPath, data, 0600)
}

// Prime returns the prime to use, preferring override if it is non-zero.
func (c *Config) Prime(override int32) int32 {
	if override != 0 {
		return override
	}
	if c.DefaultPrime != 0 {
		return c.DefaultPrime
	}
	return DefaultPrime
}

var errNotConfigured = errors.New("shamir-vault not configured - run 'shamir-vault config set' first")

// ErrNotConfigured is returned by RequireConfig-style checks when no
// configuration is loaded at all. Load itself never produces that state: a
// missing config file yields DefaultConfig instead.
func ErrNotConfigured() error {
	return errNotConfigured
}
