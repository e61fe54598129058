// Package jubjub implements the constant-time group arithmetic of a
// twisted Edwards elliptic curve of the Jubjub family:
//
//	-u² + v² = 1 + d·u²·v²
//
// over the prime base field Fq (the Curve25519/Ed25519 group order) with
// scalar field Fr. It provides AffinePoint and ExtendedPoint with their
// addition, doubling, negation, scalar multiplication and subgroup-
// membership operations, the AffineNielsPoint/ExtendedNielsPoint
// precomputed addend forms, batch affine normalization, and the CtOption
// constant-time result carrier.
//
// Every operation that can touch secret data runs a fixed sequence of
// field operations: conditional selection blends both operands with a
// bitmask, and scalar multiplication always performs the same number of
// doublings and conditional adds regardless of the scalar's value.
package jubjub
