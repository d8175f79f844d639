package sss

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultiplyAll(t *testing.T) {
	cases := []struct {
		name string
		xs   []int64
		want int64
	}{
		{"empty", nil, 1},
		{"positive", []int64{1, 2, 3}, 6},
		{"mixed sign", []int64{2, -1, 2}, -4},
		{"zero factor", []int64{0, -43, 112}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			xs := make([]*big.Int, len(c.xs))
			for i, x := range c.xs {
				xs[i] = big.NewInt(x)
			}
			got := MultiplyAll(xs)
			require.Equal(t, big.NewInt(c.want).String(), got.String())
		})
	}
}

func TestInv(t *testing.T) {
	cases := []struct {
		a, m, want int64
	}{
		{-4, 3617, 904},
		{-4, 7211, -1803},
	}

	for _, c := range cases {
		a := big.NewInt(c.a)
		m := big.NewInt(c.m)

		got, err := Inv(a, m)
		require.NoError(t, err)
		require.Equal(t, big.NewInt(c.want), got)

		product := Mod(new(big.Int).Mul(a, got), m)
		require.Equal(t, big.NewInt(1), product)
	}
}

func TestInvZeroDivisor(t *testing.T) {
	_, err := Inv(big.NewInt(0), big.NewInt(3617))
	require.ErrorIs(t, err, ErrArithmetic)
}

func TestModFloorsNegatives(t *testing.T) {
	got := Mod(big.NewInt(-7), big.NewInt(5))
	require.Equal(t, big.NewInt(3), got)
}
