package fixedpoint

import (
	"fmt"

	"github.com/calebcase/fixedpoint/storage"
)

//go:generate go run mkformats.go

// Format describes a Q(M.N) number: M integer bits, N fraction bits and one
// sign bit stored in a native signed integer of exactly M+N+1 bits.
type Format struct {
	M     uint8
	N     uint8
	Width storage.Width
}

// NewFormat returns the format with m integer bits and n fraction bits. It
// fails with ErrFormat when m+n+1 is not a supported storage width.
func NewFormat(m, n uint8) (f Format, err error) {
	w, err := storage.Resolve(int(m) + int(n) + 1)
	if err != nil {
		return Format{}, Error.Wrap(ErrFormat.Wrap(err))
	}

	return Format{
		M:     m,
		N:     n,
		Width: w,
	}, nil
}

// MustFormat is like NewFormat but panics on an invalid format.
func MustFormat(m, n uint8) Format {
	f, err := NewFormat(m, n)
	if err != nil {
		panic(err)
	}

	return f
}

// MulFormat is the format of the full product of a and b: (Ma+Mb+1, Na+Nb).
func MulFormat(a, b Format) (Format, error) {
	return NewFormat(a.M+b.M+1, a.N+b.N)
}

// DivFormat is the format of the quotient of a by b: (Ma+Nb+1, Mb+Na).
func DivFormat(a, b Format) (Format, error) {
	return NewFormat(a.M+b.N+1, b.M+a.N)
}

// Valid reports whether f has a supported storage width matching M+N+1.
func (f Format) Valid() bool {
	return f.Width.Valid() && int(f.Width.Bits) == int(f.M)+int(f.N)+1
}

// Wide reports whether f has an intermediate width that can hold the full
// product of two values of f.
func (f Format) Wide() bool {
	_, ok := f.Width.Widen()
	return ok
}

func (f Format) String() string {
	return fmt.Sprintf("Q%d.%d", f.M, f.N)
}

// Q is implemented by the marker types naming every valid format, Q0_7
// through Q63_0. A format that violates M+N+1 in {8, 16, 32, 64} has no
// marker type.
//
// A type embedding a marker also satisfies Q. Its Format is checked against
// the marker types whenever a value is constructed: constructors returning an
// error fail with ErrFormat, the others panic.
type Q interface {
	Format() Format
	q()
}

// Wide is implemented by the marker types of formats up to 32 bits wide,
// which are the formats that can be multiplied and divided through a
// double-width intermediate.
type Wide interface {
	Q
	wide()
}

// FormatOf returns the format named by F. It fails with ErrFormat when F is
// an interface type or reports a format that differs from the marker type of
// the same M and N.
func FormatOf[F Q]() (f Format, err error) {
	var q F

	// F is an interface type when its zero value is nil.
	if any(q) == nil {
		return f, Error.Wrap(ErrFormat.New("no format for interface type"))
	}

	f = q.Format()

	want, err := NewFormat(f.M, f.N)
	if err != nil || f != want {
		return f, Error.Wrap(ErrFormat.New("%T reports %s in %d bits", q, f, f.Width.Bits))
	}

	_, wide := any(q).(Wide)
	if wide != f.Wide() {
		return f, Error.Wrap(ErrFormat.New("%T reports %s, which is not wide=%t", q, f, wide))
	}

	return f, nil
}

func formatOf[F Q]() Format {
	f, err := FormatOf[F]()
	if err != nil {
		panic(err)
	}

	return f
}
