package fixedpoint

import "math"

// Convert re-expresses v in the format To.
//
// When To has at least as many fraction bits as From the scaled integer is
// shifted left in the storage of To. No precision is lost, but the integer
// part wraps if To has too few integer bits.
//
// When To has fewer fraction bits the scaled integer is divided by the power
// of two that separates the formats and rounded half away from zero: Q7.8
// 2.03125 becomes Q3.4 2.0625 and Q7.8 -2.03125 becomes Q3.4 -2.0625.
func Convert[To, From Q](v Scaled[From]) Scaled[To] {
	return Scaled[To]{raw: convert(v.raw, v.Format(), formatOf[To]())}
}

func convert(raw int64, from, to Format) int64 {
	if from.N <= to.N {
		return to.Width.Wrap(raw << (to.N - from.N))
	}

	return to.Width.Wrap(round(raw, from.N-to.N))
}

// round divides v by 2^shift, rounding half away from zero. This equals
// adding (or, for negative v, subtracting) 2^(shift-1) before a truncating
// division, without the addition overflowing near the limits of int64.
func round(v int64, shift uint8) int64 {
	if shift == 0 {
		return v
	}

	q := quo(v, shift)

	r := v - q<<shift
	if r < 0 {
		r = -r
	}

	if r >= 1<<(shift-1) {
		if v < 0 {
			q--
		} else {
			q++
		}
	}

	return q
}

// quo divides v by 2^shift, truncating toward zero.
func quo(v int64, shift uint8) int64 {
	if shift >= 63 {
		// 2^63 is not an int64; only the minimum reaches it.
		if v == math.MinInt64 {
			return -1
		}

		return 0
	}

	return v / (1 << shift)
}
