// Package fr implements the scalar field of the curve: arithmetic modulo
// the prime subgroup order r, in Montgomery form, using 4 uint64 limbs.
package fr

import (
	"crypto/subtle"
	"math/bits"
	"unsafe"

	"jubjub.dev/internal/ctopt"
)

// Elem is a scalar field element stored in Montgomery form.
type Elem struct {
	limbs [4]uint64
}

// modulus r = 0x1fffffffffffffffffffffffffffffff49b2bf0e49f58d726a9d3de35b7a1e7.
var modulus = [4]uint64{
	0x26a9d3de35b7a1e7,
	0xf49b2bf0e49f58d7,
	0xffffffffffffffff,
	0x01ffffffffffffff,
}

const inv uint64 = 0x2a81f20882b21e29

var rOne = Elem{[4]uint64{0xab1610e5242f0c80, 0xb26a078db053946c, 0x0000000000000005, 0x0000000000000000}}
var rSquared = [4]uint64{0x6921bd75f1e321aa, 0x016f997a4e557d3f, 0xfe677f26b8e821f2, 0x007be9f42e0719ec}

// Zero is the additive identity.
func Zero() Elem { return Elem{} }

// One is the multiplicative identity.
func One() Elem { return rOne }

// FromRaw builds a scalar from its canonical little-endian 64-bit limb
// representation, converting it into Montgomery form.
func FromRaw(limbs [4]uint64) Elem {
	return montMul(Elem{limbs}, Elem{rSquared})
}

// FromU64 builds the scalar equal to the given unsigned integer.
func FromU64(v uint64) Elem {
	return FromRaw([4]uint64{v, 0, 0, 0})
}

// ToRaw returns the canonical little-endian limb representation.
func (a Elem) ToRaw() [4]uint64 {
	return montMul(a, Elem{[4]uint64{1, 0, 0, 0}}).limbs
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

// FromBytes decodes a canonical little-endian 32-byte scalar, failing
// (IsSome() == 0) when the encoding is not the canonical representative
// (i.e. the integer is >= r).
func FromBytes(b [32]byte) ctopt.CtOption[Elem] {
	var raw [4]uint64
	for i := 0; i < 4; i++ {
		var limb uint64
		for k := 0; k < 8; k++ {
			limb |= uint64(b[i*8+k]) << uint(8*k)
		}
		raw[i] = limb
	}
	_, borrow := subBorrow4(raw, modulus)
	return ctopt.New(FromRaw(raw), int(borrow))
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

func reduceOnce(a [4]uint64) [4]uint64 {
	diff, borrow := subBorrow4(a, modulus)
	keepA := -borrow
	var out [4]uint64
	for i := range out {
		out[i] = (a[i] & keepA) | (diff[i] & ^keepA)
	}
	return out
}

// Add returns a+b mod r.
func (a Elem) Add(b Elem) Elem {
	sum, _ := addCarry4(a.limbs, b.limbs)
	return Elem{reduceOnce(sum)}
}

// Double returns a+a mod r.
func (a Elem) Double() Elem { return a.Add(a) }

// Sub returns a-b mod r.
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

// Neg returns -a mod r.
func (a Elem) Neg() Elem { return Zero().Sub(a) }

func mulLimb(a, b, carryIn uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	var c uint64
	lo, c = bits.Add64(lo, carryIn, 0)
	hi, _ = bits.Add64(hi, 0, c)
	return
}

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

// Mul returns a*b mod r.
func (a Elem) Mul(b Elem) Elem { return montMul(a, b) }

// Square returns a*a mod r.
func (a Elem) Square() Elem { return montMul(a, a) }

// Equal reports whether a == b in constant time.
func (a Elem) Equal(b Elem) int {
	ab := a.limbs
	bb := b.limbs
	return subtle.ConstantTimeCompare(
		(*[32]byte)(unsafe.Pointer(&ab[0]))[:32],
		(*[32]byte)(unsafe.Pointer(&bb[0]))[:32],
	)
}

// IsZero reports whether a == 0 in constant time.
func (a Elem) IsZero() int { return a.Equal(Zero()) }

// ConditionalSelect returns a if bit == 0, b if bit == 1.
func ConditionalSelect(a, b Elem, bit int) Elem {
	mask := -uint64(bit)
	var out [4]uint64
	for i := range out {
		out[i] = a.limbs[i] ^ (mask & (a.limbs[i] ^ b.limbs[i]))
	}
	return Elem{out}
}

// ModulusBytes returns the canonical little-endian 32-byte encoding of r.
// See DESIGN.md for why this is derived from the verified Montgomery
// constants above rather than transcribed from the separately retrieved
// curveconstants.rs literal array, which turned out to be big-endian.
func ModulusBytes() [32]byte {
	var out [32]byte
	for i := 0; i < 4; i++ {
		for b := 0; b < 8; b++ {
			out[i*8+b] = byte(modulus[i] >> uint(8*b))
		}
	}
	return out
}
