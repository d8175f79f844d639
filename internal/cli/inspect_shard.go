package cli

import (
	"github.com/spf13/cobra"

	"github.com/lcrostarosa/shamir-vault/internal/cli/runner"
	"github.com/lcrostarosa/shamir-vault/internal/sss"
)

var inspectShardCmd = &cobra.Command{
	Use:   "inspect-shard FILE",
	Short: "Print a shard file's header without reconstructing anything",
	Long: `Inspect-shard reads a single shard file's header - version, share
index, field prime, and original filename - so you can sanity-check a
shard without needing any of its siblings.`,
	Args: cobra.ExactArgs(1),
	RunE: runners.Uninitialized().Wrap(runInspectShard),
}

func init() {
	rootCmd.AddCommand(inspectShardCmd)
}

func runInspectShard(ctx *runner.CommandContext, cmd *cobra.Command, args []string) error {
	info, err := sss.InspectFile(args[0])
	if err != nil {
		return err
	}

	PrintInfo("version:  %d", info.Version)
	PrintInfo("index:    %d", info.Index)
	PrintInfo("prime:    %d", info.Prime)
	PrintInfo("filename: %s", info.Filename)
	return nil
}
