// Package storage resolves the native signed integer widths that back a
// Q(M.N) fixed point number.
//
// A format with M integer bits and N fraction bits occupies M+N+1 bits (one
// bit is reserved for the sign). Only the native signed widths are supported:
//
//  | Bits | Storage | Intermediate |
//  |------|---------|--------------|
//  | 8    | int8    | int16        |
//  | 16   | int16   | int32        |
//  | 32   | int32   | int64        |
//  | 64   | int64   | int64        |
//  |------|---------|--------------|
//
// The intermediate width holds full multiplication and division products.
// The products are computed in int64; the fixedpoint package checks the
// formats it derives for them against this column. The 64 bit entry is
// degenerate: its intermediate is not wider than the storage, so formats of
// that width cannot multiply or divide without loss.
//
// All raw values are carried in an int64 and wrapped to the storage width
// after every operation, which reproduces the overflow behavior of the native
// type of that width.
package storage

import (
	"unsafe"

	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("storage")

// ErrUnsupported is the class of errors for bit counts without a native
// storage type.
var ErrUnsupported = errs.Class("unsupported width")

// ErrRange is the class of errors for values that do not fit a width.
var ErrRange = errs.Class("out of range")

// Width is a native signed integer width.
type Width struct {
	Bits         uint8
	Intermediate uint8
	Abbr         string
}

type widths []Width

// Match returns the width with exactly the given number of bits.
func (ws widths) Match(bits int) (w Width, ok bool) {
	for _, w := range ws {
		if int(w.Bits) == bits {
			return w, true
		}
	}

	return w, false
}

var (
	Unknown = Width{}
	W8      = Width{8, 16, "i8"}
	W16     = Width{16, 32, "i16"}
	W32     = Width{32, 64, "i32"}
	W64     = Width{64, 64, "i64"}

	Widths = widths{
		W8,
		W16,
		W32,
		W64,
	}
)

// Resolve returns the storage width for a format occupying bits bits.
func Resolve(bits int) (w Width, err error) {
	w, ok := Widths.Match(bits)
	if !ok {
		return Unknown, Error.Wrap(ErrUnsupported.New("bits=%d", bits))
	}

	return w, nil
}

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool {
	_, ok := Widths.Match(int(w.Bits))
	return ok
}

// Index is the position of w in Widths. It is -1 for an unsupported width.
func (w Width) Index() int {
	for i, x := range Widths {
		if x == w {
			return i
		}
	}

	return -1
}

// Widen returns the intermediate width. It is false for the 64 bit width,
// whose intermediate is not wider than itself.
func (w Width) Widen() (Width, bool) {
	wide, ok := Widths.Match(int(w.Intermediate))
	if !ok || wide.Bits == w.Bits {
		return w, false
	}

	return wide, true
}

// Min is the smallest value representable in w.
func (w Width) Min() int64 {
	return -1 << (w.Bits - 1)
}

// Max is the largest value representable in w.
func (w Width) Max() int64 {
	return 1<<(w.Bits-1) - 1
}

// Fits reports whether v is representable in w without wrapping.
func (w Width) Fits(v int64) bool {
	return v >= w.Min() && v <= w.Max()
}

// Wrap truncates v to w bits and sign extends the result, exactly like a
// conversion to the native signed type of that width.
func (w Width) Wrap(v int64) int64 {
	switch w.Bits {
	case 8:
		return int64(int8(v))
	case 16:
		return int64(int16(v))
	case 32:
		return int64(int32(v))
	}

	return v
}

// Check returns ErrRange if v does not fit w.
func (w Width) Check(v int64) error {
	if !w.Fits(v) {
		return Error.Wrap(ErrRange.New("%d does not fit %s", v, w.Abbr))
	}

	return nil
}

// SizeOf returns the width of the signed integer type S.
func SizeOf[S constraints.Signed]() Width {
	var s S
	w, _ := Widths.Match(int(unsafe.Sizeof(s)) * 8)

	return w
}

// As narrows v into the native type S. S must be at least as wide as w and v
// must fit w.
func As[S constraints.Signed](w Width, v int64) (s S, err error) {
	if SizeOf[S]().Bits < w.Bits {
		return s, Error.Wrap(ErrRange.New("%s does not hold %s", SizeOf[S]().Abbr, w.Abbr))
	}

	err = w.Check(v)
	if err != nil {
		return s, err
	}

	return S(v), nil
}
