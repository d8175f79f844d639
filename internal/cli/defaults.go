package cli

import (
	"github.com/lcrostarosa/shamir-vault/internal/cli/runner"
	"github.com/lcrostarosa/shamir-vault/internal/config"
)

// resolvePrime prefers an explicit non-zero flag override, falling back to
// the loaded config's default and finally the package default.
func resolvePrime(ctx *runner.CommandContext, override int32) int32 {
	if ctx.Config != nil {
		return ctx.Config.Prime(override)
	}
	if override != 0 {
		return override
	}
	return config.DefaultPrime
}

// resolveShares returns the loaded config's default share count, falling
// back to flagDefault (the flag's own cobra default) if no config is
// loaded or the config doesn't set one. Callers only apply this when the
// --shares flag itself wasn't explicitly set.
func resolveShares(ctx *runner.CommandContext, flagDefault int) int {
	if ctx.Config != nil && ctx.Config.DefaultShares != 0 {
		return ctx.Config.DefaultShares
	}
	return flagDefault
}

// resolveThreshold is resolveShares' counterpart for --threshold.
func resolveThreshold(ctx *runner.CommandContext, flagDefault int) int {
	if ctx.Config != nil && ctx.Config.DefaultThreshold != 0 {
		return ctx.Config.DefaultThreshold
	}
	return flagDefault
}

// resolveOutputDir is resolveShares' counterpart for --output-dir.
func resolveOutputDir(ctx *runner.CommandContext, flagDefault string) string {
	if ctx.Config != nil && ctx.Config.OutputDir != "" {
		return ctx.Config.OutputDir
	}
	return flagDefault
}
