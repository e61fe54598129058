package jubjub

import "jubjub.dev/internal/fq"

// BatchNormalize converts each ExtendedPoint in v to an equivalent
// representation with Z = 1, T1 = U, T2 = V, and returns the corresponding
// AffinePoint for each, using Montgomery's trick: one field inversion and
// 5n multiplications instead of n inversions. Every point in v must have a
// nonzero Z (guaranteed by invariant I1 for any point produced by this
// package). Calling BatchNormalize twice on the same slice is idempotent.
func BatchNormalize(v []ExtendedPoint) []AffinePoint {
	acc := fq.One()
	for i := range v {
		// t1 is unused as a group-arithmetic invariant once points enter
		// this function, so it doubles as scratch space for the running
		// product of Z-coordinates seen so far.
		v[i].t1 = acc
		acc = acc.Mul(v[i].z)
	}

	acc = acc.Invert().Unwrap() // every Z is nonzero by I1

	out := make([]AffinePoint, len(v))
	for i := len(v) - 1; i >= 0; i-- {
		p := v[i]

		tmp := p.t1.Mul(acc) // 1/z_i
		acc = acc.Mul(p.z)   // cancel z_i out of the running product

		p.u = p.u.Mul(tmp)
		p.v = p.v.Mul(tmp)
		p.z = fq.One()
		p.t1 = p.u
		p.t2 = p.v

		v[i] = p
		out[i] = AffinePoint{u: p.u, v: p.v}
	}

	return out
}
