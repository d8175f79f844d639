package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lcrostarosa/shamir-vault/internal/cli/runner"
	"github.com/lcrostarosa/shamir-vault/internal/logging"
	"github.com/lcrostarosa/shamir-vault/internal/sss"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a secret string into shares",
	Long: `Split splits a short secret - a password, a key, a PIN - into n shares
such that any t of them reconstruct the secret exactly.

The secret is read from --secret, or from stdin if that flag is omitted.
--shares/--threshold fall back to the saved config's defaults (see
"config set") when omitted.`,
	Example: `  shamir-vault split --secret "correct horse battery staple" --shares 5 --threshold 3
  echo -n "my secret" | shamir-vault split -n 5 -t 3`,
	RunE: runners.Uninitialized().Wrap(runSplit),
}

func init() {
	f := splitCmd.Flags()
	f.String("secret", "", "the secret to split (reads stdin if omitted)")
	f.IntP("shares", "n", 5, "total number of shares to produce")
	f.IntP("threshold", "t", 3, "shares required to reconstruct")
	f.Int64P("prime", "p", 0, "field prime (defaults to the configured default)")

	rootCmd.AddCommand(splitCmd)
}

func runSplit(ctx *runner.CommandContext, cmd *cobra.Command, args []string) error {
	flags := runner.Flags(cmd)
	secretFlag := flags.String("secret")
	n := flags.Int("shares")
	t := flags.Int("threshold")
	primeFlag := flags.Int64("prime")
	if err := flags.Err(); err != nil {
		return err
	}

	if !flags.Changed("shares") {
		n = resolveShares(ctx, n)
	}
	if !flags.Changed("threshold") {
		t = resolveThreshold(ctx, t)
	}

	secret := []byte(secretFlag)
	if secretFlag == "" {
		line, err := readStdinLine()
		if err != nil {
			return fmt.Errorf("reading secret from stdin: %w", err)
		}
		secret = []byte(line)
	}

	prime := resolvePrime(ctx, int32(primeFlag))

	logging.Info("splitting secret string",
		logging.Int("shares", n),
		logging.Int("threshold", t),
		logging.Int("bytes", len(secret)))

	shards, err := sss.GenerateString(secret, n, t, prime, nil)
	if err != nil {
		return err
	}

	PrintHeader("Shares")
	for _, s := range shards {
		PrintInfo("%s", formatShard(s))
	}
	PrintDivider()
	PrintInfo("prime: %d  threshold: %d  shares: %d", prime, t, n)

	return nil
}

func readStdinLine() (string, error) {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no input on stdin")
	}
	return strings.TrimSuffix(scanner.Text(), "\r"), nil
}
