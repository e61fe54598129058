package fq

import "testing"

func TestZeroOne(t *testing.T) {
	if Zero().IsZero() != 1 {
		t.Error("Zero() should be zero")
	}
	if One().IsZero() == 1 {
		t.Error("One() should not be zero")
	}
	if One().Equal(Zero()) == 1 {
		t.Error("One() should not equal Zero()")
	}
}

func TestFromRawToRawRoundTrip(t *testing.T) {
	cases := [][4]uint64{
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{0xdeadbeef, 0x1, 0, 0},
		{0x9403565f5a8d532d, 0xf2f07621646802fb, 0x1babc9915ffa2370, 0x02a84588fbffedd9}, // EDWARDS_D
	}
	for _, raw := range cases {
		got := FromRaw(raw).ToRaw()
		if got != raw {
			t.Errorf("round trip mismatch: got %v want %v", got, raw)
		}
	}
}

func TestAddSubNeg(t *testing.T) {
	a := FromRaw([4]uint64{5, 0, 0, 0})
	b := FromRaw([4]uint64{3, 0, 0, 0})

	sum := a.Add(b)
	if sum.ToRaw() != [4]uint64{8, 0, 0, 0} {
		t.Errorf("5+3 = %v, want 8", sum.ToRaw())
	}

	diff := a.Sub(b)
	if diff.ToRaw() != [4]uint64{2, 0, 0, 0} {
		t.Errorf("5-3 = %v, want 2", diff.ToRaw())
	}

	if a.Sub(a).IsZero() != 1 {
		t.Error("a-a should be zero")
	}
	if a.Add(a.Neg()).IsZero() != 1 {
		t.Error("a+(-a) should be zero")
	}
	if a.Double().Equal(a.Add(a)) != 1 {
		t.Error("a.Double() should equal a+a")
	}
}

func TestMulSquareIdentities(t *testing.T) {
	a := FromRaw([4]uint64{7, 0, 0, 0})
	if a.Mul(One()).Equal(a) != 1 {
		t.Error("a*1 should equal a")
	}
	if a.Mul(Zero()).IsZero() != 1 {
		t.Error("a*0 should equal 0")
	}
	if a.Square().Equal(a.Mul(a)) != 1 {
		t.Error("a.Square() should equal a*a")
	}

	// Associativity and commutativity over a handful of values.
	b := FromRaw([4]uint64{11, 0, 0, 0})
	c := FromRaw([4]uint64{13, 0, 0, 0})
	if a.Mul(b).Equal(b.Mul(a)) != 1 {
		t.Error("multiplication should commute")
	}
	if a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))) != 1 {
		t.Error("multiplication should associate")
	}
}

func TestInvert(t *testing.T) {
	if Zero().Invert().IsSome() != 0 {
		t.Error("Invert(0) should fail")
	}
	a := FromRaw([4]uint64{123456789, 0, 0, 0})
	inv := a.Invert()
	if inv.IsSome() != 1 {
		t.Fatal("Invert(a) should succeed for nonzero a")
	}
	if a.Mul(inv.Unwrap()).Equal(One()) != 1 {
		t.Error("a * a^-1 should equal 1")
	}
}

func TestSqrt(t *testing.T) {
	a := FromRaw([4]uint64{4, 0, 0, 0})
	square := a.Square()
	root := square.Sqrt()
	if root.IsSome() != 1 {
		t.Fatal("Sqrt of a perfect square should succeed")
	}
	if root.Unwrap().Square().Equal(square) != 1 {
		t.Error("sqrt(x).Square() should equal x")
	}
}

func TestConditionalSelect(t *testing.T) {
	a := FromRaw([4]uint64{1, 0, 0, 0})
	b := FromRaw([4]uint64{2, 0, 0, 0})
	if ConditionalSelect(a, b, 0).Equal(a) != 1 {
		t.Error("bit=0 should select a")
	}
	if ConditionalSelect(a, b, 1).Equal(b) != 1 {
		t.Error("bit=1 should select b")
	}
}

func TestLsb(t *testing.T) {
	if FromRaw([4]uint64{0, 0, 0, 0}).Lsb() != 0 {
		t.Error("lsb(0) should be 0")
	}
	if FromRaw([4]uint64{1, 0, 0, 0}).Lsb() != 1 {
		t.Error("lsb(1) should be 1")
	}
	if FromRaw([4]uint64{2, 0, 0, 0}).Lsb() != 0 {
		t.Error("lsb(2) should be 0")
	}
}
