package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/lcrostarosa/shamir-vault/internal/sss"
)

// formatShard renders a shard as "<index>:<hex payload>" for display and
// for round-tripping through shell arguments.
func formatShard(s sss.Shard) string {
	return fmt.Sprintf("%d:%s", s.Index, hex.EncodeToString(s.Payload))
}

// parseShard parses a shard previously rendered by formatShard.
func parseShard(raw string) (sss.Shard, error) {
	idxStr, hexPayload, ok := strings.Cut(raw, ":")
	if !ok {
		return sss.Shard{}, fmt.Errorf("malformed share %q: expected \"<index>:<hex>\"", raw)
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return sss.Shard{}, fmt.Errorf("malformed share %q: %w", raw, err)
	}
	payload, err := hex.DecodeString(hexPayload)
	if err != nil {
		return sss.Shard{}, fmt.Errorf("malformed share %q: %w", raw, err)
	}
	return sss.Shard{Index: idx, Payload: payload}, nil
}
