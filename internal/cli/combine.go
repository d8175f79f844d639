package cli

import (
	"github.com/spf13/cobra"

	"github.com/lcrostarosa/shamir-vault/internal/cli/runner"
	"github.com/lcrostarosa/shamir-vault/internal/logging"
	"github.com/lcrostarosa/shamir-vault/internal/sss"
)

var combineCmd = &cobra.Command{
	Use:   "combine SHARE...",
	Short: "Reconstruct a secret string from its shares",
	Long: `Combine reconstructs the original secret from t or more shares
produced by split. Each SHARE is in the "<index>:<hex>" form split prints.`,
	Args: cobra.MinimumNArgs(2),
	Example: `  shamir-vault combine --prime 5717 1:0a0b1c0d 3:9f0e7d01 4:11023304`,
	RunE: runners.Config().Wrap(runCombine),
}

func init() {
	f := combineCmd.Flags()
	f.Int64P("prime", "p", 0, "field prime the shares were generated under (required)")
	_ = combineCmd.MarkFlagRequired("prime")

	rootCmd.AddCommand(combineCmd)
}

func runCombine(ctx *runner.CommandContext, cmd *cobra.Command, args []string) error {
	flags := runner.Flags(cmd)
	primeFlag := flags.Int64("prime")
	if err := flags.Err(); err != nil {
		return err
	}

	shards := make([]sss.Shard, len(args))
	for i, raw := range args {
		s, err := parseShard(raw)
		if err != nil {
			return err
		}
		shards[i] = s
	}

	logging.Info("combining shares", logging.Int("count", len(shards)))

	secret, err := sss.InterpolateString(shards, int32(primeFlag), nil)
	if err != nil {
		return err
	}

	PrintInfo("%s", string(secret))
	return nil
}
