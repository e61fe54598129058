package jubjub

import "github.com/pkg/errors"

// ErrInvalidPoint is returned by AffinePointFromBytesOrErr when the 32-byte
// encoding does not decode to a point on the curve (non-canonical v,
// zero decompression denominator, or a non-residue right-hand side).
var ErrInvalidPoint = errors.New("jubjub: encoding does not represent a point on the curve")

// ErrAmbiguousSign is returned by AffinePointFromBytesOrErr when the decoded
// u is zero but the encoding requested the negative sign, which has no
// distinct representative.
var ErrAmbiguousSign = errors.New("jubjub: sign bit set but recovered u is zero")

// AffinePointFromBytesOrErr is a convenience wrapper around
// AffinePointFromBytes for callers that want an idiomatic (value, error)
// result instead of a CtOption. It is additive: the constant-time decoder
// underneath never itself returns an error or branches on one.
func AffinePointFromBytesOrErr(b [32]byte) (AffinePoint, error) {
	opt := AffinePointFromBytes(b)
	if opt.IsSome() == 1 {
		return opt.Unwrap(), nil
	}

	sign := int(b[31] >> 7)
	if sign == 1 {
		var zeroSignCheck [32]byte
		copy(zeroSignCheck[:], b[:])
		zeroSignCheck[31] &= 0x7f
		// Distinguish "ambiguous sign on u=0" from other decode failures by
		// re-checking with the sign bit cleared.
		if AffinePointFromBytes(zeroSignCheck).IsSome() == 1 {
			p := AffinePointFromBytes(zeroSignCheck).Unwrap()
			if p.u.IsZero() == 1 {
				return AffinePoint{}, errors.WithStack(ErrAmbiguousSign)
			}
		}
	}
	return AffinePoint{}, errors.WithStack(ErrInvalidPoint)
}
