package jubjub

// completedPoint is the transient (U:Z, V:T) form produced by the unified
// addition and doubling formulas. It is a refactoring aid, not a group
// element in its own right, so it stays unexported.
type completedPoint struct {
	u, v, z, t Fq
}

// intoExtended homogenizes: (u/z, v/t) = (u*t/(z*t), v*z/(z*t)), giving
// T1 = u, T2 = v for the resulting extended tuple.
func (c completedPoint) intoExtended() ExtendedPoint {
	return ExtendedPoint{
		u:  c.u.Mul(c.t),
		v:  c.v.Mul(c.z),
		z:  c.z.Mul(c.t),
		t1: c.u,
		t2: c.v,
	}
}
