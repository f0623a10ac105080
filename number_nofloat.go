//go:build fixedpoint_nofloat

package fixedpoint

import "golang.org/x/exp/constraints"

// Number is a plain numeric type a Scaled can be unscaled into. Floating
// point support is disabled by the fixedpoint_nofloat build tag.
type Number interface {
	constraints.Signed
}
