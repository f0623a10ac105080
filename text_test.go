package fixedpoint

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	require.Equal(t, "2.0625", MustNew[Q3_4](33).String())
	require.Equal(t, "-0.0625", MustNew[Q3_4](-1).String())
	require.Equal(t, "-2.03125", MustNew[Q7_8](-520).String())
	require.Equal(t, "1.5", MustNew[Q15_16](98304).String())
	require.Equal(t, "-1", Min[Q0_63]().String())
	require.Equal(t, "9223372036854775807", Max[Q63_0]().String())
	require.Equal(t, "0.000000000000000000108420217248550443400745280086994171142578125", Resolution[Q0_63]().String())

	require.True(t, decimal.RequireFromString("-2.03125").Equal(MustNew[Q7_8](-520).Decimal()))
}

func TestParse(t *testing.T) {
	type TC struct {
		input string
		raw   int64
	}

	for _, tc := range []TC{
		{input: "0", raw: 0},
		{input: "2.0625", raw: 33},
		{input: "-2.0625", raw: -33},
		{input: "7.9375", raw: 127},
		{input: "-8", raw: -128},
		// Rounded half away from zero.
		{input: "2.03125", raw: 33},
		{input: "-2.03125", raw: -33},
		{input: "2.03", raw: 32},
		{input: "-0.03125", raw: -1},
		{input: "0.03", raw: 0},
		{input: "1e-1", raw: 2},
	} {
		v, err := Parse[Q3_4](tc.input)
		require.NoError(t, err, tc.input)
		require.Equal(t, tc.raw, v.Raw(), tc.input)
	}

	for _, input := range []string{"8", "-8.0625", "7.96875", "1e40", "", "two", "1.2.3"} {
		_, err := Parse[Q3_4](input)
		require.Error(t, err, input)
		require.True(t, Error.Has(err), input)
	}

	_, err := Parse[Q3_4]("8")
	require.True(t, ErrRange.Has(err))

	require.Panics(t, func() { MustParse[Q3_4]("8") })

	d, err := FromDecimal[Q0_63](decimal.New(-1, 0))
	require.NoError(t, err)
	require.Equal(t, Min[Q0_63](), d)
}

func TestText(t *testing.T) {
	type Point struct {
		X Scaled[Q7_8]
		Y Scaled[Q15_16]
	}

	p := Point{
		X: MustParse[Q7_8]("-2.03125"),
		Y: MustParse[Q15_16]("1.5"),
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.Equal(t, `{"X":"-2.03125","Y":"1.5"}`, string(data))

	var q Point
	err = json.Unmarshal(data, &q)
	require.NoError(t, err)
	require.Equal(t, p, q)

	err = json.Unmarshal([]byte(`{"X":"200"}`), &q)
	require.Error(t, err)
	require.True(t, ErrRange.Has(err))
}
