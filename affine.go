package jubjub

import (
	"jubjub.dev/internal/ctopt"
	"jubjub.dev/internal/fq"
)

// AffinePoint is the minimal (u, v) representation of a curve point,
// satisfying -u²+v² = 1+d·u²·v².
type AffinePoint struct {
	u, v Fq
}

// AffineNielsPoint is a precomputed addend of an AffinePoint:
// (v+u, v-u, 2d·u·v).
type AffineNielsPoint struct {
	vPlusU, vMinusU, t2d Fq
}

// AffineIdentity returns the identity point (0, 1).
func AffineIdentity() AffinePoint {
	return AffinePoint{u: fq.Zero(), v: fq.One()}
}

// AffinePointFromRawUnchecked wraps coordinates without a curve-membership
// check; reserved for constructing known-valid constants.
func AffinePointFromRawUnchecked(u, v Fq) AffinePoint {
	return AffinePoint{u: u, v: v}
}

// U returns the point's u coordinate.
func (p AffinePoint) U() Fq { return p.u }

// V returns the point's v coordinate.
func (p AffinePoint) V() Fq { return p.v }

// Equal reports whether two affine points have identical coordinates.
func (p AffinePoint) Equal(q AffinePoint) int {
	return p.u.Equal(q.u) & p.v.Equal(q.v)
}

// IsOnCurveVartime evaluates the curve equation directly; for tests only.
func (p AffinePoint) IsOnCurveVartime() bool {
	u2 := p.u.Square()
	v2 := p.v.Square()
	lhs := v2.Sub(u2)
	rhs := fq.One().Add(EdwardsD.Mul(u2).Mul(v2))
	return lhs.Equal(rhs) == 1
}

// ToBytes canonically compresses the point to 32 little-endian bytes: v
// occupies the low 255 bits, and bit 255 (the top bit of byte 31) carries
// the parity of the canonical representative of u.
func (p AffinePoint) ToBytes() [32]byte {
	out := p.v.ToBytes()
	sign := byte(p.u.Lsb()) << 7
	out[31] = (out[31] & 0x7f) | sign
	return out
}

// AffinePointFromBytes decodes a compressed point, failing (IsSome() == 0)
// when v is non-canonical, the decompression denominator is zero, the
// right-hand side is a non-residue, or the requested sign is 1 but the
// recovered u is 0 (which has no distinct negation).
func AffinePointFromBytes(b [32]byte) CtOption[AffinePoint] {
	sign := int(b[31] >> 7)

	var vBytes [32]byte
	copy(vBytes[:], b[:])
	vBytes[31] &= 0x7f

	raw := fq.FromBytesRaw(vBytes)
	canonical := fq.IsCanonical(raw)
	v := fq.FromRaw(raw)

	v2 := v.Square()
	numerator := v2.Sub(fq.One())
	denominator := EdwardsD.Mul(v2).Add(fq.One())

	denomInv := denominator.Invert()
	ratio := numerator.Mul(denomInv.UnwrapOr(fq.Zero()))

	uOption := ratio.Sqrt()
	u := uOption.UnwrapOr(fq.Zero())

	flip := u.Lsb() ^ sign
	u = fq.ConditionalSelect(u, u.Neg(), flip)

	signFailure := sign & u.IsZero()
	success := canonical & denomInv.IsSome() & uOption.IsSome() & (1 - signFailure)

	return ctopt.New(AffinePoint{u: u, v: v}, success)
}

// ToNiels converts the point into its precomputed addend form.
func (p AffinePoint) ToNiels() AffineNielsPoint {
	return AffineNielsPoint{
		vPlusU:  p.v.Add(p.u),
		vMinusU: p.v.Sub(p.u),
		t2d:     p.u.Mul(p.v).Mul(EdwardsD2),
	}
}

// AffineNielsIdentity returns the identity in Niels form: (1, 1, 0).
func AffineNielsIdentity() AffineNielsPoint {
	return AffineNielsPoint{vPlusU: fq.One(), vMinusU: fq.One(), t2d: fq.Zero()}
}

// AffineNielsConditionalSelect returns a if bit == 0, b if bit == 1.
func AffineNielsConditionalSelect(a, b AffineNielsPoint, bit int) AffineNielsPoint {
	return AffineNielsPoint{
		vPlusU:  fq.ConditionalSelect(a.vPlusU, b.vPlusU, bit),
		vMinusU: fq.ConditionalSelect(a.vMinusU, b.vMinusU, bit),
		t2d:     fq.ConditionalSelect(a.t2d, b.t2d, bit),
	}
}
