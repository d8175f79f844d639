package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lcrostarosa/shamir-vault/internal/cli/runner"
	"github.com/lcrostarosa/shamir-vault/internal/fileop"
	"github.com/lcrostarosa/shamir-vault/internal/logging"
	"github.com/lcrostarosa/shamir-vault/internal/sss"
)

var splitFileCmd = &cobra.Command{
	Use:   "split-file SOURCE",
	Short: "Split a file into shard files",
	Long: `Split-file streams SOURCE into n shard files named
"<stem>-<k>.shard", written alongside the source. Any t of the shard
files reconstruct the original file exactly, without ever holding the
whole file in memory at once.`,
	Args: cobra.ExactArgs(1),
	Example: `  shamir-vault split-file backup.tar.gz --shares 5 --threshold 3`,
	RunE: runners.Uninitialized().Wrap(runSplitFile),
}

func init() {
	f := splitFileCmd.Flags()
	f.IntP("shares", "n", 5, "total number of shard files to produce")
	f.IntP("threshold", "t", 3, "shard files required to reconstruct")
	f.Int64P("prime", "p", 0, "field prime (defaults to the configured default)")
	f.Bool("quiet", false, "suppress progress output")

	rootCmd.AddCommand(splitFileCmd)
}

func runSplitFile(ctx *runner.CommandContext, cmd *cobra.Command, args []string) error {
	flags := runner.Flags(cmd)
	n := flags.Int("shares")
	t := flags.Int("threshold")
	primeFlag := flags.Int64("prime")
	quiet := flags.Bool("quiet")
	if err := flags.Err(); err != nil {
		return err
	}

	if !flags.Changed("shares") {
		n = resolveShares(ctx, n)
	}
	if !flags.Changed("threshold") {
		t = resolveThreshold(ctx, t)
	}

	source := args[0]
	prime := resolvePrime(ctx, int32(primeFlag))

	logging.Info("splitting file",
		logging.String("source", source),
		logging.Int("shares", n),
		logging.Int("threshold", t))

	var progress sss.Progress
	if !quiet {
		progress = fileop.NewDefaultThrottledProgress(sss.ProgressFunc(func(fraction float64) {
			fmt.Printf("\rsplitting... %3.0f%%", fraction*100)
			if fraction >= 1 {
				fmt.Println()
			}
		}))
	}

	paths, err := sss.GenerateFile(cmd.Context(), source, n, t, prime, progress)
	if err != nil {
		return err
	}

	PrintHeader("Shard files")
	for _, p := range paths {
		PrintInfo("%s", filepath.Clean(p))
	}
	PrintDivider()
	PrintInfo("prime: %d  threshold: %d  shares: %d", prime, t, n)

	return nil
}
