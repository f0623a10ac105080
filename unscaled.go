package fixedpoint

import (
	"math"
	"unsafe"
)

// UnscaledInt is a plain integer destined for the format F.
type UnscaledInt[F Q] struct {
	Value int64
}

// Scale returns Value*2^N. Value must fit the storage width of F; the shifted
// result wraps like the native storage type when the integer part of F is too
// small to hold Value.
func (u UnscaledInt[F]) Scale() (v Scaled[F], err error) {
	f, err := FormatOf[F]()
	if err != nil {
		return v, err
	}

	if !f.Width.Fits(u.Value) {
		return v, Error.Wrap(ErrRange.New("%d does not fit %s", u.Value, f.Width.Abbr))
	}

	return Scaled[F]{raw: f.Width.Wrap(u.Value << f.N)}, nil
}

// UnscaleInt returns v as an integer, truncated toward zero.
func (v Scaled[F]) UnscaleInt() UnscaledInt[F] {
	return UnscaledInt[F]{Value: quo(v.raw, v.Format().N)}
}

// Unscale returns v as the plain number type T.
//
// Integer results are truncated toward zero and T must be at least as wide as
// the storage of F. Floating point results are exact up to the precision of
// T, since 2^N is a power of two.
func Unscale[T Number, F Q](v Scaled[F]) (t T, err error) {
	f := v.Format()

	if isFloat[T]() {
		return T(v.raw) / T(math.Ldexp(1, int(f.N))), nil
	}

	if bits := unsafe.Sizeof(t) * 8; bits < uintptr(f.Width.Bits) {
		return t, Error.Wrap(ErrNarrowTarget.New("%d bits cannot hold %s", bits, f))
	}

	return T(quo(v.raw, f.N)), nil
}

func isFloat[T Number]() bool {
	var half T = 1
	half /= 2

	return half != 0
}
