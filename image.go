package fixedpoint

import (
	"golang.org/x/image/math/fixed"
)

// The golang.org/x/image/math/fixed types count the sign bit as an integer
// bit: Int26_6 is Q25.6 in 32 bits and Int52_12 is Q51.12 in 64 bits. The
// conversions below are exact.

// FromInt26_6 returns x as a Q25.6 value.
func FromInt26_6(x fixed.Int26_6) Scaled[Q25_6] {
	return Scaled[Q25_6]{raw: int64(x)}
}

// Int26_6 returns v as a fixed.Int26_6.
func Int26_6(v Scaled[Q25_6]) fixed.Int26_6 {
	return fixed.Int26_6(v.raw)
}

// FromInt52_12 returns x as a Q51.12 value.
func FromInt52_12(x fixed.Int52_12) Scaled[Q51_12] {
	return Scaled[Q51_12]{raw: int64(x)}
}

// Int52_12 returns v as a fixed.Int52_12.
func Int52_12(v Scaled[Q51_12]) fixed.Int52_12 {
	return fixed.Int52_12(v.raw)
}
