package sss

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Point is an (x, y) pair on a shard's polynomial: x identifies the shard
// (1..n) and y is the polynomial's value at x in the prime field.
type Point struct {
	X int32
	Y int32
}

// GenerateCoefficients draws t-1 integers uniformly from [0, p) using the
// system CSPRNG. t must be at least 1; t=1 yields the degenerate
// secret-only polynomial (an empty coefficient slice).
func GenerateCoefficients(t int, p int32) ([]int32, error) {
	if t < 1 {
		return nil, fmt.Errorf("sss: threshold must be at least 1, got %d", t)
	}

	coeffs := make([]int32, t-1)
	bound := big.NewInt(int64(p))
	for i := range coeffs {
		n, err := rand.Int(rand.Reader, bound)
		if err != nil {
			return nil, fmt.Errorf("sss: failed to draw random coefficient: %w", err)
		}
		coeffs[i] = int32(n.Int64())
	}
	return coeffs, nil
}

// GeneratePoints evaluates the degree-(t-1) polynomial whose constant term
// is secret and whose remaining coefficients are coeffs, at x = 1..n, in
// the field mod p. output[k] always has x = k+1. secret need not already be
// reduced mod p; the buffer codec always calls this with a byte value, but
// the operation itself is defined for any integer constant term.
func GeneratePoints(secret int32, n int, coeffs []int32, p int32) ([]Point, error) {
	if n < 1 {
		return nil, fmt.Errorf("sss: n must be at least 1, got %d", n)
	}

	prime := big.NewInt(int64(p))
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		x := int64(i + 1)
		y := big.NewInt(int64(secret))

		xPow := big.NewInt(1)
		xBig := big.NewInt(x)
		for _, c := range coeffs {
			xPow.Mul(xPow, xBig)
			term := new(big.Int).Mul(big.NewInt(int64(c)), xPow)
			y.Add(y, term)
		}
		y = Mod(y, prime)

		points[i] = Point{X: int32(x), Y: int32(y.Int64())}
	}
	return points, nil
}
