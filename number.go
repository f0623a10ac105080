//go:build !fixedpoint_nofloat

package fixedpoint

import "golang.org/x/exp/constraints"

// Number is a plain numeric type a Scaled can be unscaled into.
type Number interface {
	constraints.Signed | constraints.Float
}
