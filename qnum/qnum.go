package qnum

import (
	"io"

	"github.com/zeebo/errs"

	"github.com/calebcase/fixedpoint"
	"github.com/calebcase/fixedpoint/control"
	"github.com/calebcase/fixedpoint/integer"
	"github.com/calebcase/fixedpoint/storage"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("qnum")

// Block is a binary fixed point number.
type Block struct {
	Format fixedpoint.Format
	Raw    int64
	Null   bool
}

// FromScaled returns the block holding v.
func FromScaled[F fixedpoint.Q](v fixedpoint.Scaled[F]) Block {
	return Block{
		Format: v.Format(),
		Raw:    v.Raw(),
	}
}

// Scaled returns the value held by b. The format of b must be F.
func Scaled[F fixedpoint.Q](b Block) (v fixedpoint.Scaled[F], err error) {
	defer Error.WrapP(&err)

	if b.Null {
		return v, errs.New("null value")
	}

	want, err := fixedpoint.FormatOf[F]()
	if err != nil {
		return v, err
	}

	if b.Format != want {
		return v, fixedpoint.ErrFormat.New("block is %s, not %s", b.Format, want)
	}

	return fixedpoint.New[F](b.Raw)
}

func formatByte(f fixedpoint.Format) byte {
	return f.N<<2 | byte(f.Width.Index())
}

func parseFormatByte(b byte) (f fixedpoint.Format, err error) {
	w := storage.Widths[b&0b11]
	n := b >> 2

	if n >= w.Bits {
		return f, fixedpoint.ErrFormat.New("N=%d does not fit %s", n, w.Abbr)
	}

	return fixedpoint.NewFormat(w.Bits-1-n, n)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	if !b.Format.Valid() {
		return nil, Error.Wrap(fixedpoint.ErrFormat.New("invalid format: %+v", b.Format))
	}

	data, err = integer.Block{Value: b.Raw}.MarshalBinary()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return append(data, formatByte(b.Format)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) < 2 {
		return errs.New("short block: %d bytes", len(data))
	}

	f, err := parseFormatByte(data[len(data)-1])
	if err != nil {
		return err
	}

	ib := &integer.Block{}

	err = ib.UnmarshalBinary(data[:len(data)-1])
	if err != nil {
		return err
	}

	err = f.Width.Check(ib.Value)
	if err != nil {
		return err
	}

	*b = Block{
		Format: f,
		Raw:    ib.Value,
	}

	return nil
}

// Schema represents a configured number format. A zero Format accepts any
// format.
type Schema struct {
	Format fixedpoint.Format

	Nullable bool
}

func (s Schema) check(b *Block) error {
	if b.Null {
		if !s.Nullable {
			return errs.New("null value for non-nullable schema")
		}

		return nil
	}

	if s.Format != (fixedpoint.Format{}) && b.Format != s.Format {
		Logger().Debug("qnum: format mismatch", "want", s.Format.String(), "got", b.Format.String())

		return fixedpoint.ErrFormat.New("schema is %s, not %s", s.Format, b.Format)
	}

	return nil
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

	Logger().Debug("qnum: decode", "format", b.Format.String(), "raw", b.Raw, "null", b.Null)

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

// Encode writes a block to the writer.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	err = e.schema.check(b)
	if err != nil {
		return err
	}

	Logger().Debug("qnum: encode", "format", b.Format.String(), "raw", b.Raw, "null", b.Null)

	var data []byte

	if !b.Null {
		data, err = b.MarshalBinary()
		if err != nil {
			return err
		}
	}

	return control.WriteField(e.ce, data, b.Null)
}

// Encode writes v to e.
func Encode[F fixedpoint.Q](e *Encoder, v fixedpoint.Scaled[F]) error {
	b := FromScaled(v)
	return e.Encode(&b)
}

// Decode reads a value of the format F from d.
func Decode[F fixedpoint.Q](d *Decoder) (v fixedpoint.Scaled[F], err error) {
	b := &Block{}

	err = d.Decode(b)
	if err != nil {
		return v, err
	}

	return Scaled[F](*b)
}
