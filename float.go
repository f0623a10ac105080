//go:build !fixedpoint_nofloat

package fixedpoint

import (
	"math"

	"golang.org/x/exp/constraints"
)

// UnscaledFloat is a float32 destined for the format F.
type UnscaledFloat[F Q] struct {
	Value float32
}

// Scale returns Value*2^N truncated toward zero.
func (u UnscaledFloat[F]) Scale() (Scaled[F], error) {
	return scaleFloat[F](u.Value)
}

// UnscaledDouble is a float64 destined for the format F.
type UnscaledDouble[F Q] struct {
	Value float64
}

// Scale returns Value*2^N truncated toward zero.
func (u UnscaledDouble[F]) Scale() (Scaled[F], error) {
	return scaleFloat[F](u.Value)
}

// UnscaleFloat returns v as a float32.
func (v Scaled[F]) UnscaleFloat() UnscaledFloat[F] {
	x, _ := Unscale[float32](v)
	return UnscaledFloat[F]{Value: x}
}

// UnscaleDouble returns v as a float64.
func (v Scaled[F]) UnscaleDouble() UnscaledDouble[F] {
	x, _ := Unscale[float64](v)
	return UnscaledDouble[F]{Value: x}
}

// scaleFloat multiplies x by 2^N in the precision of T and truncates the
// product to the storage of F. A product outside the storage range (or not a
// number) is an error, since the conversion has no wrapping semantics.
func scaleFloat[F Q, T constraints.Float](x T) (v Scaled[F], err error) {
	f, err := FormatOf[F]()
	if err != nil {
		return v, err
	}

	p := float64(x * T(math.Ldexp(1, int(f.N))))
	if math.IsNaN(p) {
		return v, Error.Wrap(ErrRange.New("NaN does not fit %s", f))
	}

	p = math.Trunc(p)

	limit := math.Ldexp(1, int(f.Width.Bits)-1)
	if p < -limit || p >= limit {
		return v, Error.Wrap(ErrRange.New("%v does not fit %s", x, f))
	}

	return Scaled[F]{raw: int64(p)}, nil
}
