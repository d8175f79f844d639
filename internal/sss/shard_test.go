package sss

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	y := []int32{0, 1, 1612, -1}
	encoded := Encode(y)
	require.Len(t, encoded, 2*len(y))

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, y, decoded)
}

func TestDecodeRejectsOddLength(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrMalformedShard)
}

// TestRoundTripString exercises property 8.
func TestRoundTripString(t *testing.T) {
	secret := []byte("1234567890123456789012")
	const n, thresh = 8, 5
	const p = int32(5717)

	shards, err := GenerateString(secret, n, thresh, p, nil)
	require.NoError(t, err)
	require.Len(t, shards, n)
	for _, s := range shards {
		require.Len(t, s.Payload, 2*len(secret))
	}

	got, err := InterpolateString(shards[:thresh], p, nil)
	require.NoError(t, err)
	require.True(t, bytes.Equal(secret, got))

	// Over-supply: using all n shards must also reconstruct correctly.
	got, err = InterpolateString(shards, p, nil)
	require.NoError(t, err)
	require.True(t, bytes.Equal(secret, got))
}

func TestGenerateStringRejectsEmptySecret(t *testing.T) {
	_, err := GenerateString(nil, 4, 2, 1613, nil)
	require.ErrorIs(t, err, ErrEmptySecret)
}
