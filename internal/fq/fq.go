// Package fq implements the base field of the curve: arithmetic modulo the
// 253-bit prime q (the Curve25519/Ed25519 group order), in Montgomery form,
// using 4 uint64 limbs.
package fq

import (
	"crypto/subtle"
	"math/bits"
	"unsafe"

	"jubjub.dev/internal/ctopt"
)

// Elem is a field element stored in Montgomery form: the wire value is
// raw * R mod q for raw the canonical integer representative.
type Elem struct {
	limbs [4]uint64
}

// modulus q = 0x1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed,
// the order of the Curve25519/Ed25519 group.
var modulus = [4]uint64{
	0x5812631a5cf5d3ed,
	0x14def9dea2f79cd6,
	0x0000000000000000,
	0x1000000000000000,
}

// inv = -(q^{-1} mod 2^64) mod 2^64, the Montgomery reduction constant.
const inv uint64 = 0xd2b51da312547e1b

// rOne = 2^256 mod q, rSquared = 2^512 mod q (used to move values in and
// out of Montgomery form).
var rOne = Elem{[4]uint64{0xd6ec31748d98951d, 0xc6ef5bf4737dcf70, 0xfffffffffffffffe, 0x0fffffffffffffff}}
var rSquared = [4]uint64{0xa40611e3449c0f01, 0xd00e1ba768859347, 0xceec73d217f5be65, 0x0399411b7c309a3d}

// s and rootOfUnity parameterize Tonelli-Shanks style reasoning about the
// field's 2-adicity; sqrt below uses the closed-form q ≡ 5 (mod 8) formula
// instead, which is equivalent and cheaper for this modulus, but s and
// rootOfUnity are kept as they are part of the retrieved constant set.
const s uint32 = 2

var rootOfUnity = FromRaw([4]uint64{0xbe8775dfebbe07d4, 0x0ef0565342ce83fe, 0x7d3d6d60abc1c27a, 0x094a7310e07981e7})

// expSqrt = (q-5)/8, the exponent used by the q ≡ 5 (mod 8) square-root
// formula (Atkin's algorithm).
var expSqrt = [4]uint64{0xcb024c634b9eba7d, 0x029bdf3bd45ef39a, 0x0000000000000000, 0x0200000000000000}

// expInvert = q-2, the Fermat's little theorem exponent for field inversion.
var expInvert = [4]uint64{0x5812631a5cf5d3eb, 0x14def9dea2f79cd6, 0x0000000000000000, 0x1000000000000000}

// Zero is the additive identity.
func Zero() Elem { return Elem{} }

// One is the multiplicative identity.
func One() Elem { return rOne }

// S returns the field's 2-adicity and the corresponding root of unity; kept
// for parity with the retrieved constant set (see the comment on s above).
func S() uint32         { return s }
func RootOfUnity() Elem { return rootOfUnity }

// FromRaw builds a field element from its canonical little-endian 64-bit
// limb representation, converting it into Montgomery form. It does not
// check limbs < q: callers needing to reject non-canonical encodings (point
// decompression) must check IsCanonical first.
func FromRaw(limbs [4]uint64) Elem {
	return montMul(Elem{limbs}, Elem{rSquared})
}

// IsCanonical reports, in constant time, whether limbs < q, i.e. whether
// limbs is the unique canonical representative of some field element.
func IsCanonical(limbs [4]uint64) int {
	_, borrow := subBorrow4(limbs, modulus)
	return int(borrow)
}

// ToRaw returns the canonical little-endian limb representation, converting
// out of Montgomery form.
func (a Elem) ToRaw() [4]uint64 {
	return montMul(a, Elem{[4]uint64{1, 0, 0, 0}}).limbs
}

func addCarry4(a, b [4]uint64) ([4]uint64, uint64) {
	var out [4]uint64
	var carry uint64
	out[0], carry = bits.Add64(a[0], b[0], 0)
	out[1], carry = bits.Add64(a[1], b[1], carry)
	out[2], carry = bits.Add64(a[2], b[2], carry)
	out[3], carry = bits.Add64(a[3], b[3], carry)
	return out, carry
}

func subBorrow4(a, b [4]uint64) ([4]uint64, uint64) {
	var out [4]uint64
	var borrow uint64
	out[0], borrow = bits.Sub64(a[0], b[0], 0)
	out[1], borrow = bits.Sub64(a[1], b[1], borrow)
	out[2], borrow = bits.Sub64(a[2], b[2], borrow)
	out[3], borrow = bits.Sub64(a[3], b[3], borrow)
	return out, borrow
}

// reduceOnce subtracts the modulus once if the value is out of range,
// selecting via a borrow-derived mask instead of branching on the result.
func reduceOnce(a [4]uint64) [4]uint64 {
	diff, borrow := subBorrow4(a, modulus)
	// borrow == 1 means a < modulus: keep a. borrow == 0 means a >= modulus: keep diff.
	keepA := -borrow
	var out [4]uint64
	for i := range out {
		out[i] = (a[i] & keepA) | (diff[i] & ^keepA)
	}
	return out
}

// Add returns a+b mod q.
func (a Elem) Add(b Elem) Elem {
	sum, _ := addCarry4(a.limbs, b.limbs)
	return Elem{reduceOnce(sum)}
}

// Double returns a+a mod q.
func (a Elem) Double() Elem { return a.Add(a) }

// Sub returns a-b mod q.
func (a Elem) Sub(b Elem) Elem {
	diff, borrow := subBorrow4(a.limbs, b.limbs)
	added, _ := addCarry4(diff, modulus)
	mask := -borrow
	var out [4]uint64
	for i := range out {
		out[i] = (diff[i] & ^mask) | (added[i] & mask)
	}
	return Elem{out}
}

// Neg returns -a mod q.
func (a Elem) Neg() Elem {
	return Zero().Sub(a)
}

func mulLimb(a, b, carryIn uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	var c uint64
	lo, c = bits.Add64(lo, carryIn, 0)
	hi, _ = bits.Add64(hi, 0, c)
	return
}

// montMul implements the classic two-step Montgomery multiplication: a
// schoolbook 4x4 product into an 8-limb accumulator, then Montgomery
// reduction (CIOS-equivalent, separated for clarity), following the same
// bits.Mul64/Add64/Sub64 idiom the field backend this is ported from uses
// for its own wide multiplication.
func montMul(a, b Elem) Elem {
	var t [8]uint64
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			lo, hi := mulLimb(a.limbs[i], b.limbs[j], carry)
			sum, c := bits.Add64(t[i+j], lo, 0)
			t[i+j] = sum
			carry = hi + c
		}
		t[i+4], _ = bits.Add64(t[i+4], carry, 0)
	}

	for i := 0; i < 4; i++ {
		m := t[i] * inv
		var carry uint64
		for j := 0; j < 4; j++ {
			lo, hi := mulLimb(m, modulus[j], carry)
			sum, c := bits.Add64(t[i+j], lo, 0)
			t[i+j] = sum
			carry = hi + c
		}
		k := i + 4
		for carry != 0 {
			sum, c := bits.Add64(t[k], carry, 0)
			t[k] = sum
			carry = c
			k++
		}
	}

	var out [4]uint64
	copy(out[:], t[4:8])
	return Elem{reduceOnce(out)}
}

// Mul returns a*b mod q, both operands and the result in Montgomery form.
func (a Elem) Mul(b Elem) Elem { return montMul(a, b) }

// Square returns a*a mod q.
func (a Elem) Square() Elem { return montMul(a, a) }

// Equal reports whether a == b in constant time.
func (a Elem) Equal(b Elem) int {
	ab := a.limbs
	bb := b.limbs
	eq := subtle.ConstantTimeCompare(
		(*[32]byte)(unsafe.Pointer(&ab[0]))[:32],
		(*[32]byte)(unsafe.Pointer(&bb[0]))[:32],
	)
	return eq
}

// IsZero reports whether a == 0 in constant time.
func (a Elem) IsZero() int {
	return a.Equal(Zero())
}

// ToBytes returns the canonical little-endian 32-byte encoding.
func (a Elem) ToBytes() [32]byte {
	raw := a.ToRaw()
	var out [32]byte
	for i := 0; i < 4; i++ {
		for b := 0; b < 8; b++ {
			out[i*8+b] = byte(raw[i] >> uint(8*b))
		}
	}
	return out
}

// FromBytesRaw parses a little-endian 32-byte array into limbs without
// reducing or checking canonicity; callers decide what to do with an
// out-of-range value (see IsCanonical).
func FromBytesRaw(b [32]byte) [4]uint64 {
	var raw [4]uint64
	for i := 0; i < 4; i++ {
		var limb uint64
		for k := 0; k < 8; k++ {
			limb |= uint64(b[i*8+k]) << uint(8*k)
		}
		raw[i] = limb
	}
	return raw
}

// Lsb returns the least-significant bit (parity) of the canonical integer
// representative.
func (a Elem) Lsb() int {
	raw := a.ToRaw()
	return int(raw[0] & 1)
}

// ConditionalSelect returns a if bit == 0, b if bit == 1, via a bitmask
// blend with no data-dependent branch.
func ConditionalSelect(a, b Elem, bit int) Elem {
	mask := -uint64(bit)
	var out [4]uint64
	for i := range out {
		out[i] = a.limbs[i] ^ (mask & (a.limbs[i] ^ b.limbs[i]))
	}
	return Elem{out}
}

// powRaw raises a to the power given by the little-endian 4-limb public
// exponent, via fixed-length square-and-multiply. The exponent is always one
// of the module's own constants (q-2 or (q-5)/8), never caller/secret data,
// so the fixed iteration count is the only discipline this needs.
func powRaw(a Elem, exp [4]uint64) Elem {
	result := One()
	for limbIdx := 3; limbIdx >= 0; limbIdx-- {
		for bitIdx := 63; bitIdx >= 0; bitIdx-- {
			result = result.Square()
			bit := int((exp[limbIdx] >> uint(bitIdx)) & 1)
			result = ConditionalSelect(result, result.Mul(a), bit)
		}
	}
	return result
}

// Invert returns a^{-1}, failing (IsSome() == 0) iff a == 0.
func (a Elem) Invert() ctopt.CtOption[Elem] {
	inverse := powRaw(a, expInvert)
	return ctopt.New(inverse, 1-a.IsZero())
}

// Sqrt returns a square root of a using the q ≡ 5 (mod 8) closed-form
// (Atkin's algorithm), failing (IsSome() == 0) iff a is a non-residue.
// Grounded in the same q ≡ 5 (mod 8) identity the Curve25519/Ed25519 base
// field family uses for its own inverse-square-root routines.
func (a Elem) Sqrt() ctopt.CtOption[Elem] {
	two := One().Double()
	v := powRaw(a.Mul(two), expSqrt)
	i := two.Mul(a).Mul(v.Square())
	r := a.Mul(v).Mul(i.Sub(One()))
	ok := r.Square().Equal(a)
	return ctopt.New(r, ok)
}

// String is provided for debugging only; not constant-time.
func (a Elem) String() string {
	raw := a.ToRaw()
	const hexdigits = "0123456789abcdef"
	buf := make([]byte, 0, 66)
	buf = append(buf, '0', 'x')
	for i := 3; i >= 0; i-- {
		for shift := 60; shift >= 0; shift -= 4 {
			buf = append(buf, hexdigits[(raw[i]>>uint(shift))&0xf])
		}
	}
	return string(buf)
}
