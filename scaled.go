package fixedpoint

import (
	"golang.org/x/exp/constraints"

	"github.com/calebcase/fixedpoint/storage"
)

// Scaled is a fixed point number in the format F. The zero value is zero.
//
// Scaled is a value type: copies are independent and no method retains a
// reference to its receiver.
type Scaled[F Q] struct {
	raw int64
}

// New returns the value whose scaled integer is raw. It fails when raw does
// not fit the storage width of F.
func New[F Q](raw int64) (v Scaled[F], err error) {
	f, err := FormatOf[F]()
	if err != nil {
		return v, err
	}

	err = f.Width.Check(raw)
	if err != nil {
		return v, Error.Wrap(err)
	}

	return Scaled[F]{raw: raw}, nil
}

// MustNew is like New but panics when raw does not fit.
func MustNew[F Q](raw int64) Scaled[F] {
	v, err := New[F](raw)
	if err != nil {
		panic(err)
	}

	return v
}

// Wrap returns the value whose scaled integer is raw truncated to the storage
// width of F.
func Wrap[F Q](raw int64) Scaled[F] {
	return Scaled[F]{raw: formatOf[F]().Width.Wrap(raw)}
}

// Min is the smallest value of F, -2^M.
func Min[F Q]() Scaled[F] {
	return Scaled[F]{raw: formatOf[F]().Width.Min()}
}

// Max is the largest value of F, 2^M - 2^-N.
func Max[F Q]() Scaled[F] {
	return Scaled[F]{raw: formatOf[F]().Width.Max()}
}

// Resolution is the smallest positive value of F, 2^-N.
func Resolution[F Q]() Scaled[F] {
	formatOf[F]()

	return Scaled[F]{raw: 1}
}

// Raw returns the scaled integer.
func (v Scaled[F]) Raw() int64 {
	return v.raw
}

// RawAs returns the scaled integer in the native signed type S. S must be at
// least as wide as the storage of F.
func RawAs[S constraints.Signed, F Q](v Scaled[F]) (s S, err error) {
	s, err = storage.As[S](v.Format().Width, v.raw)
	return s, Error.Wrap(err)
}

// Format returns the format of v.
func (v Scaled[F]) Format() Format {
	return formatOf[F]()
}

func (v Scaled[F]) wrap(raw int64) Scaled[F] {
	return Scaled[F]{raw: v.Format().Width.Wrap(raw)}
}

// Add returns v+o.
func (v Scaled[F]) Add(o Scaled[F]) Scaled[F] {
	return v.wrap(v.raw + o.raw)
}

// Sub returns v-o.
func (v Scaled[F]) Sub(o Scaled[F]) Scaled[F] {
	return v.wrap(v.raw - o.raw)
}

// Neg returns -v. The negation of Min is Min.
func (v Scaled[F]) Neg() Scaled[F] {
	return v.wrap(-v.raw)
}

// AddAssign sets v to v+o.
func (v *Scaled[F]) AddAssign(o Scaled[F]) {
	*v = v.Add(o)
}

// SubAssign sets v to v-o.
func (v *Scaled[F]) SubAssign(o Scaled[F]) {
	*v = v.Sub(o)
}

// Inc adds one resolution step to v.
func (v *Scaled[F]) Inc() {
	*v = v.wrap(v.raw + 1)
}

// Dec subtracts one resolution step from v.
func (v *Scaled[F]) Dec() {
	*v = v.wrap(v.raw - 1)
}

// Sign returns -1, 0 or +1 depending on the sign of v.
func (v Scaled[F]) Sign() int {
	switch {
	case v.raw < 0:
		return -1
	case v.raw > 0:
		return 1
	}

	return 0
}

// Cmp returns -1 if v < o, 0 if v == o and +1 if v > o.
func (v Scaled[F]) Cmp(o Scaled[F]) int {
	switch {
	case v.raw < o.raw:
		return -1
	case v.raw > o.raw:
		return 1
	}

	return 0
}

// Equal reports whether v == o.
func (v Scaled[F]) Equal(o Scaled[F]) bool { return v.raw == o.raw }

// Less reports whether v < o.
func (v Scaled[F]) Less(o Scaled[F]) bool { return v.raw < o.raw }

// LessEqual reports whether v <= o.
func (v Scaled[F]) LessEqual(o Scaled[F]) bool { return v.raw <= o.raw }

// Greater reports whether v > o.
func (v Scaled[F]) Greater(o Scaled[F]) bool { return v.raw > o.raw }

// GreaterEqual reports whether v >= o.
func (v Scaled[F]) GreaterEqual(o Scaled[F]) bool { return v.raw >= o.raw }

// Mul returns the exact product of a and b in the format R, which must be
// (Ma+Mb+1, Na+Nb). The scaled integers are multiplied without a shift: a
// product of values scaled by 2^Na and 2^Nb is scaled by 2^(Na+Nb).
func Mul[R Q, A, B Wide](a Scaled[A], b Scaled[B]) (r Scaled[R], err error) {
	defer Error.WrapP(&err)

	f, err := result[R](MulFormat, a.Format(), b.Format())
	if err != nil {
		return r, err
	}

	return Scaled[R]{raw: f.Width.Wrap(a.raw * b.raw)}, nil
}

// Div returns the quotient of a by b in the format R, which must be
// (Ma+Nb+1, Mb+Na). The dividend is shifted left by Mb+Nb bits before the
// division so that the quotient is scaled by 2^(Mb+Na). The quotient is
// truncated toward zero.
func Div[R Q, A, B Wide](a Scaled[A], b Scaled[B]) (r Scaled[R], err error) {
	defer Error.WrapP(&err)

	f, err := result[R](DivFormat, a.Format(), b.Format())
	if err != nil {
		return r, err
	}

	if b.raw == 0 {
		return r, ErrDivideByZero.New("%s / 0", a)
	}

	bf := b.Format()

	return Scaled[R]{raw: f.Width.Wrap((a.raw << (bf.M + bf.N)) / b.raw)}, nil
}

// MulAssign sets v to v*o rounded to the format F.
func MulAssign[F Wide](v *Scaled[F], o Scaled[F]) {
	f := v.Format()
	wide, _ := MulFormat(f, f)

	v.raw = convert(v.raw*o.raw, wide, f)
}

// DivAssign sets v to v/o rounded to the format F. v is unchanged when o is
// zero.
func DivAssign[F Wide](v *Scaled[F], o Scaled[F]) (err error) {
	if o.raw == 0 {
		return Error.Wrap(ErrDivideByZero.New("%s / 0", v))
	}

	f := v.Format()
	wide, _ := DivFormat(f, f)

	v.raw = convert((v.raw<<(f.M+f.N))/o.raw, wide, f)

	return nil
}

func result[R Q](derive func(a, b Format) (Format, error), a, b Format) (f Format, err error) {
	f, err = derive(a, b)
	if err != nil {
		return f, ErrFormat.New("%s and %s: %v", a, b, err)
	}

	want, err := FormatOf[R]()
	if err != nil {
		return f, err
	}

	if f != want {
		return f, ErrFormat.New("%s and %s produce %s, not %s", a, b, f, want)
	}

	// Both operands share one storage width, so the result occupies
	// exactly its intermediate.
	if wide, ok := a.Width.Widen(); !ok || f.Width != wide {
		return f, ErrFormat.New("%s exceeds the intermediate of %s", f, a)
	}

	return f, nil
}
