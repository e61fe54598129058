package jubjub

import (
	"jubjub.dev/internal/fq"
	"jubjub.dev/internal/fr"
)

// EdwardsD is the curve coefficient d in -u²+v² = 1+d·u²·v².
var EdwardsD = fq.FromRaw([4]uint64{
	0x9403565f5a8d532d,
	0xf2f07621646802fb,
	0x1babc9915ffa2370,
	0x02a84588fbffedd9,
})

// EdwardsD2 is 2d, precomputed for the extended addition/doubling formulas.
var EdwardsD2 = EdwardsD.Double()

// FRModulusBytes is the canonical little-endian 256-bit encoding of r, the
// scalar field modulus. See DESIGN.md for why this is derived from the
// verified Montgomery constants in internal/fr rather than the literal byte
// array retrieved from the source's curveconstants.rs, which turned out to
// encode the same integer big-endian.
var FRModulusBytes = fr.ModulusBytes()
