// Package fixedpoint provides signed binary fixed point numbers.
//
// A Q(M.N) number stores the real value
//
//  value = raw * 2^-N
//
// in a signed integer of M+N+1 bits, where raw is the scaled integer. Its
// range is [-2^M, 2^M - 2^-N] and its resolution is 2^-N. For example in
// Q3.4:
//
//  2.0625 = 33 * 2^-4
//
// Formats are named by marker types (Q3_4, Q7_8, Q15_16, ...) so that the
// format of every value is part of its type:
//
//  x, _ := fixedpoint.UnscaledFloat[fixedpoint.Q3_4]{Value: 1.3125}.Scale()
//  y, _ := fixedpoint.UnscaledFloat[fixedpoint.Q3_4]{Value: 0.625}.Scale()
//
//  z, _ := fixedpoint.Mul[fixedpoint.Q7_8](x, y) // exact, 0.8203125
//  fixedpoint.MulAssign(&x, y)                   // rounded, 0.8125
//
// Addition, subtraction and comparison require operands of the same format.
// Multiplication and division produce a wider format that holds the exact
// result; the compound forms round back to the operand format, half away from
// zero.
//
// Overflow
//
// No operation saturates. A result that does not fit the storage width wraps
// exactly like the native signed integer of that width would.
//
// Floating point
//
// Scaling from and unscaling to float32 and float64 is included unless the
// package is built with the fixedpoint_nofloat tag.
package fixedpoint

import (
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("fixedpoint")

var (
	// ErrFormat is the class of errors for formats violating M+N+1 in
	// {8, 16, 32, 64} or not matching the format an operation derives.
	ErrFormat = errs.Class("format")

	// ErrDivideByZero is the class of errors for division by a zero raw
	// value.
	ErrDivideByZero = errs.Class("divide by zero")

	// ErrNarrowTarget is the class of errors for unscaling into an integer
	// type narrower than the storage width.
	ErrNarrowTarget = errs.Class("narrow target")

	// ErrRange is the class of errors for plain values that cannot be
	// scaled into a format.
	ErrRange = errs.Class("range")
)
