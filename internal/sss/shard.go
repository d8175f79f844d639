package sss

import "encoding/binary"

// Shard is a shard as handed to or received from a caller: Index
// identifies it within the emitting set (1..n) and Payload is its
// y-sequence serialised per Encode, one per secret byte, 2 bytes each.
// Within one GenerateString call all shard payloads share the same
// length, 2*len(secret).
type Shard struct {
	Index   int
	Payload []byte
}

// Encode serialises a shard's y-sequence as little-endian signed 16-bit
// integers, 2 bytes per value. Output length is always 2*len(y).
func Encode(y []int32) []byte {
	out := make([]byte, 2*len(y))
	for i, v := range y {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(v)))
	}
	return out
}

// Decode is the inverse of Encode: it splits payload into consecutive
// 2-byte chunks and reads each as a signed little-endian 16-bit integer.
// It fails with ErrMalformedShard if payload has odd length.
func Decode(payload []byte) ([]int32, error) {
	if len(payload)%2 != 0 {
		return nil, ErrMalformedShard
	}
	y := make([]int32, len(payload)/2)
	for i := range y {
		y[i] = int32(int16(binary.LittleEndian.Uint16(payload[2*i:])))
	}
	return y, nil
}

// GenerateString splits secret into n shards, any t of which suffice to
// reconstruct it, with arithmetic performed mod p. Each returned shard's
// Payload is the §4.5-encoded byte form of its y-sequence.
func GenerateString(secret []byte, n, t int, p int32, progress Progress) ([]Shard, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	points, err := GenerateBuffer(secret, n, t, p, progress)
	if err != nil {
		return nil, err
	}

	shards := make([]Shard, len(points))
	for i, sp := range points {
		shards[i] = Shard{Index: sp.Index, Payload: Encode(sp.Y)}
	}
	return shards, nil
}

// InterpolateString reconstructs the original byte sequence from t or more
// shards produced by GenerateString. Output length is payload length / 2.
func InterpolateString(shards []Shard, p int32, progress Progress) ([]byte, error) {
	points := make([]ShardPoints, len(shards))
	for i, s := range shards {
		y, err := Decode(s.Payload)
		if err != nil {
			return nil, err
		}
		points[i] = ShardPoints{Index: s.Index, Y: y}
	}
	return InterpolateBuffer(points, p, progress)
}
