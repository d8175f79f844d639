package sss

import "math/big"

// ValidatePoints checks that points is well-formed for interpolation: at
// least 2 points, and every y strictly smaller than p. It does not reject
// duplicate x-values; those surface as ErrArithmetic from a zero
// denominator once interpolation actually runs.
func ValidatePoints(points []Point, p int32) error {
	if len(points) < 2 {
		return ErrInsufficientInputs
	}
	for _, pt := range points {
		if pt.Y >= p {
			return ErrPrimeTooSmall
		}
	}
	return nil
}

// InterpolateSecret recovers the constant term of the unique degree-(k-1)
// polynomial over GF(p) passing through the k supplied points, via
// Lagrange interpolation at x=0. It is deterministic: for any k >= t
// points drawn from a valid GenerateBuffer/GeneratePoints output, it
// returns the original secret value exactly. The buffer codec narrows the
// result to a byte; InterpolateSecret itself only guarantees a 32-bit
// field element, failing with ErrOverflow if the reconstructed value does
// not fit one.
func InterpolateSecret(points []Point, p int32) (int32, error) {
	if err := ValidatePoints(points, p); err != nil {
		return 0, err
	}

	prime := big.NewInt(int64(p))

	// num_i = product over j != i of (-x_j); den_i = product over j != i of (x_i - x_j).
	nums := make([]*big.Int, len(points))
	dens := make([]*big.Int, len(points))
	for i := range points {
		var numFactors, denFactors []*big.Int
		for j := range points {
			if i == j {
				continue
			}
			numFactors = append(numFactors, big.NewInt(-int64(points[j].X)))
			denFactors = append(denFactors, big.NewInt(int64(points[i].X-points[j].X)))
		}
		nums[i] = MultiplyAll(numFactors)
		dens[i] = MultiplyAll(denFactors)
	}

	d := MultiplyAll(dens)

	n := big.NewInt(0)
	for i := range points {
		invDenI, err := Inv(dens[i], prime)
		if err != nil {
			return 0, err
		}

		term := new(big.Int).Mul(nums[i], d)
		term.Mul(term, big.NewInt(int64(points[i].Y)))
		term = Mod(term, prime)
		term.Mul(term, invDenI)

		n.Add(n, term)
	}

	invD, err := Inv(d, prime)
	if err != nil {
		return 0, err
	}

	result := new(big.Int).Mul(n, invD)
	result = Mod(result, prime)
	result.Add(result, prime)
	result = Mod(result, prime)

	if !result.IsInt64() {
		return 0, ErrOverflow
	}
	v := result.Int64()
	if int64(int32(v)) != v {
		return 0, ErrOverflow
	}
	return int32(v), nil
}
