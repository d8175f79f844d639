package sss

import "fmt"

// ShardPoints is one shard's ordered y-values across an entire secret
// buffer: index identifies the shard (1..n) and Y[i] is that shard's
// polynomial value for secret byte i.
type ShardPoints struct {
	Index int
	Y     []int32
}

// ValidateBuffers checks that shards is non-empty and every shard's Y
// sequence has the same length.
func ValidateBuffers(shards []ShardPoints) error {
	if len(shards) == 0 {
		return fmt.Errorf("sss: at least one shard buffer is required")
	}
	want := len(shards[0].Y)
	for _, s := range shards {
		if len(s.Y) != want {
			return ErrDifferingBufferLengths
		}
	}
	return nil
}

// GenerateBuffer maps secret to n parallel point sequences, one per shard.
// For each byte of secret, a fresh set of t-1 coefficients is drawn and the
// resulting polynomial is evaluated at x = 1..n; shard k's entry is
// appended to output[k-1].Y. Coefficients are never reused across bytes -
// this is what keeps the scheme information-theoretically secure
// byte-by-byte. progress is reported once per byte processed, with
// monotonically non-decreasing values in [0, 1].
func GenerateBuffer(secret []byte, n, t int, p int32, progress Progress) ([]ShardPoints, error) {
	if t < 2 {
		return nil, ErrThresholdTooSmall
	}
	if t > n {
		return nil, ErrThresholdExceedsTotal
	}
	progress = progressOrNoop(progress)

	shards := make([]ShardPoints, n)
	for i := range shards {
		shards[i] = ShardPoints{Index: i + 1, Y: make([]int32, len(secret))}
	}

	total := len(secret)
	for b, secretByte := range secret {
		coeffs, err := GenerateCoefficients(t, p)
		if err != nil {
			return nil, err
		}
		points, err := GeneratePoints(int32(secretByte), n, coeffs, p)
		if err != nil {
			return nil, err
		}
		for k, pt := range points {
			shards[k].Y[b] = pt.Y
		}
		progress.Report(float64(b+1) / float64(total))
	}
	return shards, nil
}

// InterpolateBuffer is the inverse of GenerateBuffer: given t or more
// shards' point sequences, it recovers the original byte sequence. It
// fails fast on the first InterpolateSecret error, propagated unchanged,
// and reports progress once per recovered byte.
func InterpolateBuffer(shards []ShardPoints, p int32, progress Progress) ([]byte, error) {
	if err := ValidateBuffers(shards); err != nil {
		return nil, err
	}
	progress = progressOrNoop(progress)

	length := len(shards[0].Y)
	secret := make([]byte, length)
	for i := 0; i < length; i++ {
		points := make([]Point, len(shards))
		for k, s := range shards {
			points[k] = Point{X: int32(s.Index), Y: s.Y[i]}
		}
		v, err := InterpolateSecret(points, p)
		if err != nil {
			return nil, err
		}
		secret[i] = byte(v)
		progress.Report(float64(i+1) / float64(length))
	}
	return secret, nil
}
