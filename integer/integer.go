// Package integer encodes signed integers of a native storage width as BSV
// data blocks.
//
// The magnitude is shifted left by one and the sign is stored in the lowest
// bit (aka zigzag), then written big-endian without leading zero bytes:
//
//  +1   -> 0000_0010
//  -1   -> 0000_0011
//  +127 -> 1111_1110
//
// Zero is written as a single zero byte.
package integer

import (
	"io"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/fixedpoint/control"
	"github.com/calebcase/fixedpoint/storage"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

var maxMagnitude = new(big.Int).Lsh(big.NewInt(1), 63)

// Block is a signed integer number.
type Block struct {
	Value int64
	Null  bool
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := big.NewInt(b.Value)
	negative := i.Sign() < 0

	i.Abs(i)
	i.Lsh(i, 1)
	if negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	i := new(big.Int).SetBytes(data)

	negative := i.Bit(0) == 1
	i.Rsh(i, 1)

	// The magnitude of the minimum int64 is one larger than the maximum.
	switch c := i.Cmp(maxMagnitude); {
	case c > 0, c == 0 && !negative:
		return Error.New("magnitude exceeds 64 bits: %x", data)
	}

	if negative {
		i.Neg(i)
	}

	b.Value = i.Int64()
	b.Null = false

	return nil
}

// Schema for an integer.
type Schema struct {
	Width storage.Width

	Nullable bool
}

func (s Schema) check(b *Block) error {
	if b.Null {
		if !s.Nullable {
			return Error.New("null value for non-nullable schema")
		}

		return nil
	}

	return s.Width.Check(b.Value)
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode parses a block from the reader. It returns io.EOF when no blocks
// remain.
func (d *Decoder) Decode(b *Block) (err error) {
	data, null, err := control.ReadField(d.cd)
	if err == io.EOF {
		return err
	}

	defer Error.WrapP(&err)

	if err != nil {
		return err
	}

	if null {
		*b = Block{Null: true}
	} else {
		err = b.UnmarshalBinary(data)
		if err != nil {
			return err
		}
	}

	return d.schema.check(b)
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode write a block to the writer.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	err = e.schema.check(b)
	if err != nil {
		return err
	}

	var data []byte

	if !b.Null {
		data, err = b.MarshalBinary()
		if err != nil {
			return err
		}
	}

	return control.WriteField(e.ce, data, b.Null)
}
