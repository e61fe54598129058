package jubjub

import (
	"jubjub.dev/internal/ctopt"
	"jubjub.dev/internal/fq"
	"jubjub.dev/internal/fr"
)

// Fq is the curve's base field, the order of the Curve25519/Ed25519 group.
type Fq = fq.Elem

// Fr is the curve's scalar field, the prime order of the subgroup the
// cofactor-8 curve carries.
type Fr = fr.Elem

// CtOption carries a value together with a constant-time presence bit, used
// by every fallible operation in this package (decoding, inversion, square
// root).
type CtOption[T any] = ctopt.CtOption[T]
