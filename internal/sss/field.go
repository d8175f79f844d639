package sss

import "math/big"

// Mod returns the unique r in [0, m) with r = a (mod m), for positive m and
// any signed a. Go's math/big.Int.Mod already implements Euclidean division
// (the result is never negative), which is exactly the
// mathematical modulus Lagrange interpolation needs and the built-in %
// operator does not provide for negative dividends.
func Mod(a, m *big.Int) *big.Int {
	r := new(big.Int)
	r.Mod(a, m)
	return r
}

// MultiplyAll returns the arbitrary-precision product of xs. An empty
// sequence returns 1.
func MultiplyAll(xs []*big.Int) *big.Int {
	product := big.NewInt(1)
	for _, x := range xs {
		product.Mul(product, x)
	}
	return product
}

// Inv returns x such that a*x = 1 (mod m), computed via the extended
// Euclidean algorithm. It is valid to call only when gcd(a, m) = 1, which
// holds whenever m is prime and a is not congruent to 0 (mod m); Inv
// returns ErrArithmetic otherwise. The returned value is the raw Bezout
// coefficient for a and is not reduced into [0, m) - callers that need a
// canonical residue must apply Mod themselves.
func Inv(a, m *big.Int) (*big.Int, error) {
	g, x, _ := extendedGCD(a, m)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrArithmetic
	}
	return x, nil
}

// extendedGCD returns (g, x, y) such that a*x + m*y = g = gcd(a, m), via the
// standard iterative extended Euclidean algorithm. big.Int's Div/Mod pair
// implements Euclidean division, so the remainder sequence here stays
// consistent with Mod above without any sign adjustment.
func extendedGCD(a, m *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(m)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q, newR := new(big.Int), new(big.Int)
		q.DivMod(oldR, r, newR)
		oldR, r = r, newR

		newS := new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldS, s = s, newS

		newT := new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
		oldT, t = t, newT
	}
	return oldR, oldS, oldT
}
