package jubjub

import "jubjub.dev/internal/fq"

// ExtendedPoint is the projective extended-coordinate representation
// (U, V, Z, T1, T2) with Z ≠ 0 and T1·T2 = U·V/Z, representing the affine
// point (U/Z, V/Z).
type ExtendedPoint struct {
	u, v, z, t1, t2 Fq
}

// ExtendedNielsPoint is a precomputed addend of an ExtendedPoint:
// (V+U, V-U, Z, 2d·T1·T2).
type ExtendedNielsPoint struct {
	vPlusU, vMinusU, z, t2d Fq
}

// ExtendedIdentity returns the identity point (0, 1, 1, 0, 0).
func ExtendedIdentity() ExtendedPoint {
	return ExtendedPoint{u: fq.Zero(), v: fq.One(), z: fq.One(), t1: fq.Zero(), t2: fq.Zero()}
}

// ExtendedFromAffine lifts an affine point into extended coordinates.
func ExtendedFromAffine(p AffinePoint) ExtendedPoint {
	return ExtendedPoint{u: p.u, v: p.v, z: fq.One(), t1: p.u, t2: p.v}
}

// ToAffine normalizes a single point to affine form via one field
// inversion. BatchNormalize should be preferred for more than one point.
func (e ExtendedPoint) ToAffine() AffinePoint {
	zInv := e.z.Invert().Unwrap() // Z ≠ 0 is a standing invariant (I1)
	return AffinePoint{u: e.u.Mul(zInv), v: e.v.Mul(zInv)}
}

// IsIdentity reports, via the projective form of (0, 1), whether e is the
// identity: U == 0 and V == Z.
func (e ExtendedPoint) IsIdentity() int {
	return e.u.IsZero() & e.v.Equal(e.z)
}

// Neg returns -e.
func (e ExtendedPoint) Neg() ExtendedPoint {
	return ExtendedPoint{u: e.u.Neg(), v: e.v, z: e.z, t1: e.t1.Neg(), t2: e.t2}
}

// CtEq reports whether e and other represent the same group element,
// cross-multiplying to compare without normalizing either operand.
func (e ExtendedPoint) CtEq(other ExtendedPoint) int {
	a := e.u.Mul(other.z).Equal(other.u.Mul(e.z))
	b := e.v.Mul(other.z).Equal(other.v.Mul(e.z))
	return a & b
}

// ExtendedConditionalSelect returns a if bit == 0, b if bit == 1.
func ExtendedConditionalSelect(a, b ExtendedPoint, bit int) ExtendedPoint {
	return ExtendedPoint{
		u:  fq.ConditionalSelect(a.u, b.u, bit),
		v:  fq.ConditionalSelect(a.v, b.v, bit),
		z:  fq.ConditionalSelect(a.z, b.z, bit),
		t1: fq.ConditionalSelect(a.t1, b.t1, bit),
		t2: fq.ConditionalSelect(a.t2, b.t2, bit),
	}
}

// IsOnCurveVartime lifts down to affine and checks the curve equation; for
// tests only. Supplements spec.md, which defines this only on AffinePoint;
// the reference crate exposes the same check on ExtendedPoint too.
func (e ExtendedPoint) IsOnCurveVartime() bool {
	return e.ToAffine().IsOnCurveVartime()
}

// Double implements the twisted-Edwards projective doubling formula for
// a = -1 (the "dbl-2008-bbjlp" structure).
func (e ExtendedPoint) Double() ExtendedPoint {
	uu := e.u.Square()
	vv := e.v.Square()
	zz2 := e.z.Square().Double()
	uv2 := e.u.Add(e.v).Square()
	vvPlusUU := vv.Add(uu)
	vvMinusUU := vv.Sub(uu)

	c := completedPoint{
		u: uv2.Sub(vvPlusUU),
		v: vvPlusUU,
		z: vvMinusUU,
		t: zz2.Sub(vvMinusUU),
	}
	return c.intoExtended()
}

// ToNiels converts e into its precomputed addend form.
func (e ExtendedPoint) ToNiels() ExtendedNielsPoint {
	return ExtendedNielsPoint{
		vPlusU:  e.v.Add(e.u),
		vMinusU: e.v.Sub(e.u),
		z:       e.z,
		t2d:     e.t1.Mul(e.t2).Mul(EdwardsD2),
	}
}

// ExtendedNielsIdentity returns the identity in Niels form: (1, 1, 1, 0).
func ExtendedNielsIdentity() ExtendedNielsPoint {
	return ExtendedNielsPoint{vPlusU: fq.One(), vMinusU: fq.One(), z: fq.One(), t2d: fq.Zero()}
}

// ExtendedNielsConditionalSelect returns a if bit == 0, b if bit == 1.
func ExtendedNielsConditionalSelect(a, b ExtendedNielsPoint, bit int) ExtendedNielsPoint {
	return ExtendedNielsPoint{
		vPlusU:  fq.ConditionalSelect(a.vPlusU, b.vPlusU, bit),
		vMinusU: fq.ConditionalSelect(a.vMinusU, b.vMinusU, bit),
		z:       fq.ConditionalSelect(a.z, b.z, bit),
		t2d:     fq.ConditionalSelect(a.t2d, b.t2d, bit),
	}
}

// AddExtendedNiels adds a precomputed extended addend (8 field
// multiplications).
func (e ExtendedPoint) AddExtendedNiels(n ExtendedNielsPoint) ExtendedPoint {
	a := e.v.Sub(e.u).Mul(n.vMinusU)
	b := e.v.Add(e.u).Mul(n.vPlusU)
	c := e.t1.Mul(e.t2).Mul(n.t2d)
	d := e.z.Mul(n.z).Double()

	return completedPoint{
		u: b.Sub(a),
		v: b.Add(a),
		z: d.Add(c),
		t: d.Sub(c),
	}.intoExtended()
}

// SubExtendedNiels subtracts a precomputed extended addend.
func (e ExtendedPoint) SubExtendedNiels(n ExtendedNielsPoint) ExtendedPoint {
	a := e.v.Sub(e.u).Mul(n.vPlusU)
	b := e.v.Add(e.u).Mul(n.vMinusU)
	c := e.t1.Mul(e.t2).Mul(n.t2d)
	d := e.z.Mul(n.z).Double()

	return completedPoint{
		u: b.Sub(a),
		v: b.Add(a),
		z: d.Sub(c),
		t: d.Add(c),
	}.intoExtended()
}

// AddAffineNiels adds a precomputed affine addend (7 field multiplications,
// since the addend's Z is implicitly 1).
func (e ExtendedPoint) AddAffineNiels(n AffineNielsPoint) ExtendedPoint {
	a := e.v.Sub(e.u).Mul(n.vMinusU)
	b := e.v.Add(e.u).Mul(n.vPlusU)
	c := e.t1.Mul(e.t2).Mul(n.t2d)
	d := e.z.Double()

	return completedPoint{
		u: b.Sub(a),
		v: b.Add(a),
		z: d.Add(c),
		t: d.Sub(c),
	}.intoExtended()
}

// SubAffineNiels subtracts a precomputed affine addend.
func (e ExtendedPoint) SubAffineNiels(n AffineNielsPoint) ExtendedPoint {
	a := e.v.Sub(e.u).Mul(n.vPlusU)
	b := e.v.Add(e.u).Mul(n.vMinusU)
	c := e.t1.Mul(e.t2).Mul(n.t2d)
	d := e.z.Double()

	return completedPoint{
		u: b.Sub(a),
		v: b.Add(a),
		z: d.Sub(c),
		t: d.Add(c),
	}.intoExtended()
}

// Add adds two extended points, promoting other via ToNiels first.
func (e ExtendedPoint) Add(other ExtendedPoint) ExtendedPoint {
	return e.AddExtendedNiels(other.ToNiels())
}

// Sub subtracts two extended points, promoting other via ToNiels first.
func (e ExtendedPoint) Sub(other ExtendedPoint) ExtendedPoint {
	return e.SubExtendedNiels(other.ToNiels())
}

// Multiply performs constant-time fixed-length double-and-add scalar
// multiplication, scanning by from high byte to low byte and each byte's
// bits from MSB to LSB, skipping the top 4 bits (known zero for this
// module's wired Fr; see DESIGN.md and internal/fr.TestModulusTopBitsClear).
func (e ExtendedPoint) Multiply(by [32]byte) ExtendedPoint {
	base := e.ToNiels()
	zero := ExtendedNielsIdentity()

	acc := ExtendedIdentity()
	for byteIdx := 31; byteIdx >= 0; byteIdx-- {
		b := by[byteIdx]
		startBit := 7
		if byteIdx == 31 {
			startBit = 3 // skip the top 4 bits of the encoding
		}
		for bitIdx := startBit; bitIdx >= 0; bitIdx-- {
			acc = acc.Double()
			bit := int((b >> uint(bitIdx)) & 1)
			acc = acc.AddExtendedNiels(ExtendedNielsConditionalSelect(zero, base, bit))
		}
	}
	return acc
}

// MultiplyScalar multiplies e by a scalar field element.
func (e ExtendedPoint) MultiplyScalar(s Fr) ExtendedPoint {
	return e.Multiply(s.ToBytes())
}

// IsSmallOrder reports whether e lies in the 8-torsion subgroup: two
// doublings map any such point to one of order ≤ 2, whose U is zero.
func (e ExtendedPoint) IsSmallOrder() int {
	return e.Double().Double().u.IsZero()
}

// IsTorsionFree reports whether r·e is the identity, i.e. whether e lies in
// the subgroup of order r (the identity included; see IsPrimeOrder).
func (e ExtendedPoint) IsTorsionFree() int {
	return e.Multiply(FRModulusBytes).IsIdentity()
}

// IsPrimeOrder reports whether e itself has order r.
func (e ExtendedPoint) IsPrimeOrder() int {
	return e.IsTorsionFree() & (1 - e.IsIdentity())
}

// MulByCofactor clears the curve's cofactor (8) via three doublings.
func (e ExtendedPoint) MulByCofactor() ExtendedPoint {
	return e.Double().Double().Double()
}
