package fixedpoint

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimal returns the exact decimal value of v. Every Q(M.N) value has a
// finite decimal expansion: raw*2^-N equals raw*5^N*10^-N.
func (v Scaled[F]) Decimal() decimal.Decimal {
	n := int64(v.Format().N)

	d := new(big.Int).Exp(big.NewInt(5), big.NewInt(n), nil)
	d.Mul(d, big.NewInt(v.raw))

	return decimal.NewFromBigInt(d, -int32(n))
}

// String returns the exact decimal representation of v without trailing
// zeros, for example "2.0625" or "-3".
func (v Scaled[F]) String() string {
	return v.Decimal().String()
}

// FromDecimal returns d in the format F, rounded half away from zero to the
// nearest multiple of 2^-N. It fails when the rounded value is out of range.
func FromDecimal[F Q](d decimal.Decimal) (v Scaled[F], err error) {
	f, err := FormatOf[F]()
	if err != nil {
		return v, err
	}

	scale := decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), uint(f.N)), 0)

	raw := d.Mul(scale).Round(0).BigInt()
	if !raw.IsInt64() || !f.Width.Fits(raw.Int64()) {
		return v, Error.Wrap(ErrRange.New("%s does not fit %s", d, f))
	}

	return Scaled[F]{raw: raw.Int64()}, nil
}

// Parse parses a decimal string such as "-2.03125" into the format F,
// rounding half away from zero.
func Parse[F Q](s string) (v Scaled[F], err error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return v, Error.Wrap(err)
	}

	return FromDecimal[F](d)
}

// MustParse is like Parse but panics on error.
func MustParse[F Q](s string) Scaled[F] {
	v, err := Parse[F](s)
	if err != nil {
		panic(err)
	}

	return v
}

// MarshalText implements encoding.TextMarshaler.
func (v Scaled[F]) MarshalText() (text []byte, err error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Scaled[F]) UnmarshalText(text []byte) (err error) {
	p, err := Parse[F](string(text))
	if err != nil {
		return err
	}

	*v = p

	return nil
}
