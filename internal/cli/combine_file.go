package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcrostarosa/shamir-vault/internal/cli/runner"
	"github.com/lcrostarosa/shamir-vault/internal/fileop"
	"github.com/lcrostarosa/shamir-vault/internal/logging"
	"github.com/lcrostarosa/shamir-vault/internal/sss"
)

var combineFileCmd = &cobra.Command{
	Use:   "combine-file SHARD...",
	Short: "Reconstruct a file from its shard files",
	Long: `Combine-file reconstructs the original file from t or more shard
files produced by split-file, writing it into --output-dir under its
original filename. --output-dir falls back to the saved config's default
(see "config set") when omitted.`,
	Args: cobra.MinimumNArgs(2),
	Example: `  shamir-vault combine-file backup-1.shard backup-3.shard backup-4.shard`,
	RunE: runners.Config().Wrap(runCombineFile),
}

func init() {
	f := combineFileCmd.Flags()
	f.StringP("output-dir", "o", ".", "directory to write the reconstructed file into")
	f.Bool("quiet", false, "suppress progress output")

	rootCmd.AddCommand(combineFileCmd)
}

func runCombineFile(ctx *runner.CommandContext, cmd *cobra.Command, args []string) error {
	flags := runner.Flags(cmd)
	outputDir := flags.String("output-dir")
	quiet := flags.Bool("quiet")
	if err := flags.Err(); err != nil {
		return err
	}

	if !flags.Changed("output-dir") {
		outputDir = resolveOutputDir(ctx, outputDir)
	}

	logging.Info("combining shard files", logging.Int("count", len(args)))

	var progress sss.Progress
	if !quiet {
		progress = fileop.NewDefaultThrottledProgress(sss.ProgressFunc(func(fraction float64) {
			fmt.Printf("\rreconstructing... %3.0f%%", fraction*100)
			if fraction >= 1 {
				fmt.Println()
			}
		}))
	}

	outPath, err := sss.InterpolateFile(cmd.Context(), args, outputDir, progress)
	if err != nil {
		return err
	}

	PrintSuccess("Reconstructed %s", outPath)
	return nil
}
