package jubjub

import "jubjub.dev/internal/fq"

// FullGenerator is a point of order 8·r on the curve (an arbitrary point
// found by exhaustive search over the low byte of a trial seed). It is not
// itself a generator of the prime-order subgroup; MulByCofactor it first
// to land in the subgroup of order r. Ported verbatim from the curve's
// defining reference implementation.
var FullGenerator = AffinePointFromRawUnchecked(
	fq.FromRaw([4]uint64{0xe4b3d35df1a7adfe, 0xcaf55d1b29bf81af, 0x8b0f03ddd60a8187, 0x62edcbb8bf3787c8}),
	fq.FromRaw([4]uint64{0xb, 0x0, 0x0, 0x0}),
)

// EightTorsion enumerates the eight elements of the curve's 8-torsion
// subgroup, in the order produced by repeated addition of the generator
// found by finding an order-8r point and multiplying it by r. Ported
// verbatim from the curve's defining reference implementation.
var EightTorsion = [8]AffinePoint{
	AffinePointFromRawUnchecked(
		fq.FromRaw([4]uint64{0xd92e6a7927200d43, 0x7aa41ac43dae8582, 0xeaaae086a16618d1, 0x71d4df38ba9e7973}),
		fq.FromRaw([4]uint64{0xff0d2068eff496dd, 0x9106ee90f384a4a1, 0x16a13035ad4d7266, 0x4958bdb21966982e}),
	),
	AffinePointFromRawUnchecked(
		fq.FromRaw([4]uint64{0xfffeffff00000001, 0x67baa40089fb5bfe, 0xa5e80b39939ed334, 0x73eda753299d7d47}),
		fq.FromRaw([4]uint64{0x0, 0x0, 0x0, 0x0}),
	),
	AffinePointFromRawUnchecked(
		fq.FromRaw([4]uint64{0xd92e6a7927200d43, 0x7aa41ac43dae8582, 0xeaaae086a16618d1, 0x71d4df38ba9e7973}),
		fq.FromRaw([4]uint64{0xf2df96100b6924, 0xc2b6b5720c79b75d, 0x1c98a7d25c54659e, 0x2a94e9a11036e51a}),
	),
	AffinePointFromRawUnchecked(
		fq.FromRaw([4]uint64{0x0, 0x0, 0x0, 0x0}),
		fq.FromRaw([4]uint64{0xffffffff00000000, 0x53bda402fffe5bfe, 0x3339d80809a1d805, 0x73eda753299d7d48}),
	),
	AffinePointFromRawUnchecked(
		fq.FromRaw([4]uint64{0x26d19585d8dff2be, 0xd919893ec24fd67c, 0x488ef781683bbf33, 0x0218c81a6eff03d4}),
		fq.FromRaw([4]uint64{0xf2df96100b6924, 0xc2b6b5720c79b75d, 0x1c98a7d25c54659e, 0x2a94e9a11036e51a}),
	),
	AffinePointFromRawUnchecked(
		fq.FromRaw([4]uint64{0x1000000000000, 0xec03000276030000, 0x8d51ccce760304d0, 0x0}),
		fq.FromRaw([4]uint64{0x0, 0x0, 0x0, 0x0}),
	),
	AffinePointFromRawUnchecked(
		fq.FromRaw([4]uint64{0x26d19585d8dff2be, 0xd919893ec24fd67c, 0x488ef781683bbf33, 0x0218c81a6eff03d4}),
		fq.FromRaw([4]uint64{0xff0d2068eff496dd, 0x9106ee90f384a4a1, 0x16a13035ad4d7266, 0x4958bdb21966982e}),
	),
	AffinePointFromRawUnchecked(
		fq.FromRaw([4]uint64{0x0, 0x0, 0x0, 0x0}),
		fq.FromRaw([4]uint64{0x1, 0x0, 0x0, 0x0}),
	),
}
