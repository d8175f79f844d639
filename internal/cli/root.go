package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lcrostarosa/shamir-vault/internal/cli/runner"
	"github.com/lcrostarosa/shamir-vault/internal/config"
	"github.com/lcrostarosa/shamir-vault/internal/logging"
)

var (
	// Version is set at build time
	Version = "0.1.0"

	cfg    *config.Config
	cfgErr error

	// runners builds cobra.RunE functions with the standard interceptor chain.
	runners = runner.NewBuilder(configProvider)
)

var rootCmd = &cobra.Command{
	Use:   "shamir-vault",
	Short: "Split and reconstruct secrets with Shamir's Secret Sharing",
	Long: `shamir-vault splits a secret - a short string or an arbitrarily large
file - into n shares using Shamir's Secret Sharing over a prime field,
such that any t of the n shares reconstruct the original secret exactly
and any fewer reveal nothing about it.`,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

func init() {
	cobra.OnInitialize(initLogging, initConfig)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().String("config-dir", "", "override the config directory (default ~/.shamir-vault)")
}

func initLogging() {
	logging.InitDefault()
}

func initConfig() {
	dir, _ := rootCmd.PersistentFlags().GetString("config-dir")
	cfg, cfgErr = config.Load(dir)
}

// Config returns the loaded config (may be nil)
func Config() *config.Config {
	return cfg
}

// configProvider adapts the package-level config state to runner.ConfigProvider.
func configProvider() (*config.Config, error) {
	return cfg, cfgErr
}
