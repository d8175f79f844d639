// Package config tests
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTempConfigDir(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

func writeConfigFile(t *testing.T, dir string, cfg *Config) {
	t.Helper()
	data, err := json.MarshalIndent(cfg, "", "  ")
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), data, 0600))
}

func TestDefaultConfigDir(t *testing.T) {
	dir := DefaultConfigDir()
	assert.NotEmpty(t, dir)
	assert.True(t, filepath.IsAbs(dir))
	assert.Contains(t, dir, ".shamir-vault")
}

func TestLoad(t *testing.T) {
	t.Run("loads valid config", func(t *testing.T) {
		dir := createTempConfigDir(t)
		expected := &Config{
			DefaultPrime:     7919,
			DefaultThreshold: 4,
			DefaultShares:    6,
			OutputDir:        "/var/shards",
		}
		writeConfigFile(t, dir, expected)

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, int32(7919), cfg.DefaultPrime)
		assert.Equal(t, 4, cfg.DefaultThreshold)
		assert.Equal(t, 6, cfg.DefaultShares)
		assert.Equal(t, "/var/shards", cfg.OutputDir)
		assert.Equal(t, dir, cfg.ConfigDir)
	})

	t.Run("returns defaults for missing file", func(t *testing.T) {
		dir := createTempConfigDir(t)
		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, DefaultPrime, cfg.DefaultPrime)
		assert.Equal(t, dir, cfg.ConfigDir)
	})

	t.Run("returns error for invalid JSON", func(t *testing.T) {
		dir := createTempConfigDir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{invalid json"), 0600))

		cfg, err := Load(dir)
		assert.Nil(t, cfg)
		assert.Error(t, err)
	})

	t.Run("uses default dir when empty string provided", func(t *testing.T) {
		_, _ = Load("")
	})
}

func TestExists(t *testing.T) {
	t.Run("returns true when config exists", func(t *testing.T) {
		dir := createTempConfigDir(t)
		writeConfigFile(t, dir, &Config{DefaultPrime: 1613})
		assert.True(t, Exists(dir))
	})

	t.Run("returns false when config does not exist", func(t *testing.T) {
		dir := createTempConfigDir(t)
		assert.False(t, Exists(dir))
	})
}

func TestSave(t *testing.T) {
	t.Run("saves config to disk", func(t *testing.T) {
		dir := createTempConfigDir(t)
		cfg := &Config{
			DefaultPrime:     5717,
			DefaultThreshold: 3,
			DefaultShares:    5,
			ConfigDir:        dir,
		}

		require.NoError(t, cfg.Save())

		configPath := filepath.Join(dir, "config.json")
		assert.FileExists(t, configPath)

		data, err := os.ReadFile(configPath)
		require.NoError(t, err)

		var loaded Config
		require.NoError(t, json.Unmarshal(data, &loaded))
		assert.Equal(t, int32(5717), loaded.DefaultPrime)
		assert.Equal(t, 3, loaded.DefaultThreshold)
	})

	t.Run("creates directory if it doesn't exist", func(t *testing.T) {
		dir := filepath.Join(createTempConfigDir(t), "nested", "dir")
		cfg := &Config{ConfigDir: dir}

		require.NoError(t, cfg.Save())

		assert.DirExists(t, dir)
		assert.FileExists(t, filepath.Join(dir, "config.json"))
	})

	t.Run("file has correct permissions", func(t *testing.T) {
		dir := createTempConfigDir(t)
		cfg := &Config{ConfigDir: dir}

		require.NoError(t, cfg.Save())

		info, err := os.Stat(filepath.Join(dir, "config.json"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})
}

func TestPrime(t *testing.T) {
	t.Run("override wins when non-zero", func(t *testing.T) {
		cfg := &Config{DefaultPrime: 7919}
		assert.Equal(t, int32(1613), cfg.Prime(1613))
	})

	t.Run("falls back to config default", func(t *testing.T) {
		cfg := &Config{DefaultPrime: 7919}
		assert.Equal(t, int32(7919), cfg.Prime(0))
	})

	t.Run("falls back to package default when config has none", func(t *testing.T) {
		cfg := &Config{}
		assert.Equal(t, DefaultPrime, cfg.Prime(0))
	})
}

func TestConfigRoundTrip(t *testing.T) {
	dir := createTempConfigDir(t)

	original := &Config{
		DefaultPrime:     7919,
		DefaultThreshold: 4,
		DefaultShares:    7,
		OutputDir:        "/srv/shards",
		ConfigDir:        dir,
	}

	require.NoError(t, original.Save())

	loaded, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, original.DefaultPrime, loaded.DefaultPrime)
	assert.Equal(t, original.DefaultThreshold, loaded.DefaultThreshold)
	assert.Equal(t, original.DefaultShares, loaded.DefaultShares)
	assert.Equal(t, original.OutputDir, loaded.OutputDir)
}
