//go:build !fixedpoint_nofloat

package fixedpoint

import (
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestUnscaledFloat(t *testing.T) {
	type TC struct {
		input float64
		raw   int64
		mark  error
	}

	tcs := []TC{
		{input: 0.875, raw: 14, mark: oops.New("unexpected")},
		{input: 2.0625, raw: 33, mark: oops.New("unexpected")},
		{input: -2.0625, raw: -33, mark: oops.New("unexpected")},
		// Truncated toward zero, not rounded.
		{input: 2.03, raw: 32, mark: oops.New("unexpected")},
		{input: -2.03, raw: -32, mark: oops.New("unexpected")},
		{input: 0.06, raw: 0, mark: oops.New("unexpected")},
		{input: -8, raw: -128, mark: oops.New("unexpected")},
		{input: 7.9999, raw: 127, mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		v, err := UnscaledDouble[Q3_4]{Value: tc.input}.Scale()
		require.NoError(t, err, tc.mark)
		require.Equal(t, tc.raw, v.Raw(), tc.mark)

		f, err := UnscaledFloat[Q3_4]{Value: float32(tc.input)}.Scale()
		require.NoError(t, err, tc.mark)
		require.Equal(t, tc.raw, f.Raw(), tc.mark)
	}

	for _, x := range []float64{8, -8.0625, 100, math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := UnscaledDouble[Q3_4]{Value: x}.Scale()
		require.Error(t, err, x)
		require.True(t, ErrRange.Has(err), x)
	}

	v, err := UnscaledDouble[Q0_63]{Value: -1}.Scale()
	require.NoError(t, err)
	require.Equal(t, Min[Q0_63](), v)

	_, err = UnscaledDouble[Q0_63]{Value: 1}.Scale()
	require.Error(t, err)
}

func TestUnscaleFloat(t *testing.T) {
	v := MustParse[Q15_16]("-2.03125")

	require.Equal(t, -2.03125, v.UnscaleDouble().Value)
	require.Equal(t, float32(-2.03125), v.UnscaleFloat().Value)

	d, err := Unscale[float64](Max[Q0_7]())
	require.NoError(t, err)
	require.Equal(t, 127.0/128, d)

	// Exact in float64, not in float32.
	w := MustNew[Q31_32](1<<40 + 1)
	require.Equal(t, 256+1.0/(1<<32), w.UnscaleDouble().Value)
	require.Equal(t, float32(256), w.UnscaleFloat().Value)
}

func TestFloatRoundTrip(t *testing.T) {
	t.Run("aligned", func(t *testing.T) {
		for raw := int64(-128); raw < 128; raw++ {
			v := MustNew[Q3_4](raw)

			d, err := v.UnscaleDouble().Scale()
			require.NoError(t, err)
			require.Equal(t, v, d)

			f, err := v.UnscaleFloat().Scale()
			require.NoError(t, err)
			require.Equal(t, v, f)
		}
	})

	t.Run("unaligned", func(t *testing.T) {
		for _, x := range []float64{1.3, -1.3, 0.01, -7.77, 3.14159} {
			v, err := UnscaledDouble[Q3_4]{Value: x}.Scale()
			require.NoError(t, err)

			y := v.UnscaleDouble().Value
			require.Less(t, math.Abs(x-y), 1.0/16, x)
		}
	})

	t.Run("scale then unscale", func(t *testing.T) {
		v, err := UnscaledFloat[Q3_4]{Value: 0.875}.Scale()
		require.NoError(t, err)
		require.Equal(t, float32(0.875), v.UnscaleFloat().Value)
	})
}
