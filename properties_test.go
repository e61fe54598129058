package jubjub

import (
	"testing"

	"jubjub.dev/internal/fr"
	"pgregory.net/rapid"
)

// genScalar draws an Fr element by building a random 4-limb value and
// reducing it, so shrinking moves toward small scalars like 0 and 1.
func genScalar(t *rapid.T) Fr {
	limbs := [4]uint64{
		rapid.Uint64().Draw(t, "limb0"),
		rapid.Uint64().Draw(t, "limb1"),
		rapid.Uint64().Draw(t, "limb2"),
		rapid.Uint64().Draw(t, "limb3"),
	}
	return fr.FromRaw(limbs)
}

// genPoint draws a point in the prime-order subgroup by multiplying the
// cofactor-cleared generator by a random scalar.
func genPoint(t *rapid.T) ExtendedPoint {
	base := ExtendedFromAffine(FullGenerator).MulByCofactor()
	return base.MultiplyScalar(genScalar(t))
}

func TestPropertyAdditionIsCommutative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genPoint(t)
		q := genPoint(t)
		if p.Add(q).CtEq(q.Add(p)) != 1 {
			t.Fatal("p+q should equal q+p")
		}
	})
}

func TestPropertyAdditionIsAssociative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genPoint(t)
		q := genPoint(t)
		r := genPoint(t)
		lhs := p.Add(q).Add(r)
		rhs := p.Add(q.Add(r))
		if lhs.CtEq(rhs) != 1 {
			t.Fatal("(p+q)+r should equal p+(q+r)")
		}
	})
}

func TestPropertyIdentityIsNeutral(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genPoint(t)
		id := ExtendedIdentity()
		if p.Add(id).CtEq(p) != 1 {
			t.Fatal("p+identity should equal p")
		}
		if id.Add(p).CtEq(p) != 1 {
			t.Fatal("identity+p should equal p")
		}
	})
}

func TestPropertyNegationIsInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genPoint(t)
		if p.Add(p.Neg()).IsIdentity() != 1 {
			t.Fatal("p+(-p) should be the identity")
		}
	})
}

func TestPropertyDoubleMatchesSelfAddition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genPoint(t)
		if p.Double().CtEq(p.Add(p)) != 1 {
			t.Fatal("p.Double() should equal p.Add(p)")
		}
	})
}

func TestPropertySubIsAddNeg(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genPoint(t)
		q := genPoint(t)
		if p.Sub(q).CtEq(p.Add(q.Neg())) != 1 {
			t.Fatal("p-q should equal p+(-q)")
		}
	})
}

func TestPropertyScalarMultiplicationIsDistributive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genPoint(t)
		a := genScalar(t)
		b := genScalar(t)
		lhs := p.MultiplyScalar(a.Add(b))
		rhs := p.MultiplyScalar(a).Add(p.MultiplyScalar(b))
		if lhs.CtEq(rhs) != 1 {
			t.Fatal("p*(a+b) should equal p*a + p*b")
		}
	})
}

func TestPropertyScalarMultiplicationComposesWithFieldMultiplication(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genPoint(t)
		a := genScalar(t)
		b := genScalar(t)
		lhs := p.MultiplyScalar(a).MultiplyScalar(b)
		rhs := p.MultiplyScalar(a.Mul(b))
		if lhs.CtEq(rhs) != 1 {
			t.Fatal("(p*a)*b should equal p*(a*b)")
		}
	})
}

func TestPropertyExtendedInvariantHoldsAfterArithmetic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genPoint(t)
		q := genPoint(t)
		for _, r := range []ExtendedPoint{p, q, p.Add(q), p.Double(), p.Sub(q)} {
			if r.z.IsZero() == 1 {
				t.Fatal("Z should never be zero")
			}
			lhs := r.t1.Mul(r.t2).Mul(r.z)
			rhs := r.u.Mul(r.v)
			if lhs.Equal(rhs) != 1 {
				t.Fatal("T1*T2*Z should equal U*V")
			}
		}
	})
}

func TestPropertyBatchNormalizeMatchesToAffine(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "n")
		points := make([]ExtendedPoint, n)
		for i := range points {
			points[i] = genPoint(t)
		}
		want := make([]AffinePoint, n)
		for i, p := range points {
			want[i] = p.ToAffine()
		}
		got := BatchNormalize(points)
		for i := range got {
			if got[i].Equal(want[i]) != 1 {
				t.Fatalf("BatchNormalize()[%d] should match ToAffine()", i)
			}
		}
	})
}

func TestPropertyBatchNormalizeIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "n")
		points := make([]ExtendedPoint, n)
		for i := range points {
			points[i] = genPoint(t)
		}
		first := BatchNormalize(points)
		second := BatchNormalize(points)
		for i := range first {
			if first[i].Equal(second[i]) != 1 {
				t.Fatalf("re-normalizing point %d should be a no-op", i)
			}
		}
	})
}

func TestPropertyAffineByteRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genPoint(t).ToAffine()
		encoded := p.ToBytes()
		decoded := AffinePointFromBytes(encoded)
		if decoded.IsSome() != 1 {
			t.Fatal("a point produced by this package should always decode")
		}
		if p.Equal(decoded.Unwrap()) != 1 {
			t.Fatal("decoding should recover the original point")
		}
	})
}

func TestPropertyGeneratorPointsAreAlwaysTorsionFree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genPoint(t)
		if p.IsTorsionFree() != 1 {
			t.Fatal("a scalar multiple of the cofactor-cleared generator should be torsion-free")
		}
	})
}
