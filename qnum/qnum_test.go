package qnum

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/fixedpoint"
	"github.com/calebcase/fixedpoint/control"
	"github.com/calebcase/fixedpoint/storage"
)

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name string
		blk  *Block
		data []byte
	}

	tcs := []TC{
		{
			name: "Q3.4/-0.0625",
			blk:  &Block{Format: fixedpoint.MustFormat(3, 4), Raw: -1},
			data: []byte{0b0000_0011, 0b0001_0000},
		},
		{
			name: "Q3.4/2.0625",
			blk:  &Block{Format: fixedpoint.MustFormat(3, 4), Raw: 33},
			data: []byte{0b0100_0010, 0b0001_0000},
		},
		{
			name: "Q7.8/0",
			blk:  &Block{Format: fixedpoint.MustFormat(7, 8), Raw: 0},
			data: []byte{0b0000_0000, 0b0010_0001},
		},
		{
			name: "Q15.16/1.5",
			blk:  &Block{Format: fixedpoint.MustFormat(15, 16), Raw: 98304},
			data: []byte{0x03, 0x00, 0x00, 0b0100_0010},
		},
		{
			name: "Q0.63/min",
			blk:  &Block{Format: fixedpoint.MustFormat(0, 63), Raw: -1 << 63},
			data: []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0xff},
		},
		{
			name: "Q63.0/1",
			blk:  &Block{Format: fixedpoint.MustFormat(63, 0), Raw: 1},
			data: []byte{0b0000_0010, 0b0000_0011},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			t.Run("marshal", func(t *testing.T) {
				data, err := tc.blk.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, tc.data, data)
			})

			t.Run("unmarshal", func(t *testing.T) {
				blk := &Block{}
				err := blk.UnmarshalBinary(tc.data)
				require.NoError(t, err)
				require.Equal(t, tc.blk, blk, spew.Sdump(blk))
			})
		})
	}

	t.Run("invalid", func(t *testing.T) {
		for i, data := range [][]byte{
			nil,
			{0x00},
			// N=8 in 8 bits
			{0x00, 0b0010_0000},
			// +128 in 8 bits
			{0x01, 0x00, 0b0001_0000},
			// +2^63
			{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03},
		} {
			blk := &Block{}
			err := blk.UnmarshalBinary(data)
			require.Error(t, err, i)
			require.True(t, Error.Has(err), i)
		}

		_, err := Block{}.MarshalBinary()
		require.Error(t, err)
		require.True(t, fixedpoint.ErrFormat.Has(err))
	})
}

func TestEncodeDecode(t *testing.T) {
	type TC struct {
		name   string
		schema Schema
		blk    *Block
		data   []byte
	}

	tcs := []TC{
		{
			name:   "Q3.4/-0.0625",
			schema: Schema{Format: fixedpoint.MustFormat(3, 4)},
			blk:    &Block{Format: fixedpoint.MustFormat(3, 4), Raw: -1},
			data:   []byte{0x23, 0x10},
		},
		{
			name:   "Q3.4/2.0625",
			schema: Schema{Format: fixedpoint.MustFormat(3, 4)},
			blk:    &Block{Format: fixedpoint.MustFormat(3, 4), Raw: 33},
			data:   []byte{0x41, 0x42, 0x10},
		},
		{
			name:   "Q7.8/0",
			schema: Schema{},
			blk:    &Block{Format: fixedpoint.MustFormat(7, 8)},
			data:   []byte{0x20, 0x21},
		},
		{
			name:   "Q15.16/1.5",
			schema: Schema{},
			blk:    &Block{Format: fixedpoint.MustFormat(15, 16), Raw: 98304},
			data:   []byte{0x43, 0x03, 0x00, 0x00, 0x42},
		},
		{
			name:   "null",
			schema: Schema{Format: fixedpoint.MustFormat(15, 16), Nullable: true},
			blk:    &Block{Null: true},
			data:   []byte{0x00},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			buf := bytes.NewBuffer(nil)

			t.Run("encode", func(t *testing.T) {
				enc := NewEncoder(tc.schema, control.NewEncoder(buf))
				err := enc.Encode(tc.blk)
				require.NoError(t, err)
				require.Equal(t, tc.data, buf.Bytes())
			})

			t.Run("decode", func(t *testing.T) {
				dec := NewDecoder(tc.schema, control.NewDecoder(buf))
				blk := &Block{}
				err := dec.Decode(blk)
				require.NoError(t, err)
				require.Equal(t, tc.blk, blk)

				err = dec.Decode(blk)
				require.Equal(t, io.EOF, err)
			})
		})
	}
}

func TestSchema(t *testing.T) {
	q34 := fixedpoint.MustFormat(3, 4)
	q78 := fixedpoint.MustFormat(7, 8)

	t.Run("encode format mismatch", func(t *testing.T) {
		enc := NewEncoder(Schema{Format: q34}, control.NewEncoder(&bytes.Buffer{}))

		err := enc.Encode(&Block{Format: q78, Raw: 1})
		require.Error(t, err)
		require.True(t, fixedpoint.ErrFormat.Has(err))
	})

	t.Run("decode format mismatch", func(t *testing.T) {
		buf := &bytes.Buffer{}
		enc := NewEncoder(Schema{}, control.NewEncoder(buf))
		require.NoError(t, enc.Encode(&Block{Format: q78, Raw: 1}))

		dec := NewDecoder(Schema{Format: q34}, control.NewDecoder(buf))
		err := dec.Decode(&Block{})
		require.Error(t, err)
		require.True(t, fixedpoint.ErrFormat.Has(err))
	})

	t.Run("decode out of width", func(t *testing.T) {
		dec := NewDecoder(Schema{}, control.NewDecoder(bytes.NewBuffer([]byte{0x42, 0x01, 0x00, 0x10})))
		err := dec.Decode(&Block{})
		require.Error(t, err)
		require.True(t, storage.ErrRange.Has(err))
	})

	t.Run("null not allowed", func(t *testing.T) {
		enc := NewEncoder(Schema{Format: q34}, control.NewEncoder(&bytes.Buffer{}))
		require.Error(t, enc.Encode(&Block{Null: true}))

		dec := NewDecoder(Schema{Format: q34}, control.NewDecoder(bytes.NewBuffer([]byte{0x00})))
		require.Error(t, dec.Decode(&Block{}))
	})

	t.Run("empty", func(t *testing.T) {
		dec := NewDecoder(Schema{}, control.NewDecoder(bytes.NewBuffer([]byte{0b0000_0001})))
		require.Error(t, dec.Decode(&Block{}))
	})
}

func TestScaled(t *testing.T) {
	buf := &bytes.Buffer{}

	enc := NewEncoder(Schema{}, control.NewEncoder(buf))
	for _, s := range []string{"2.0625", "-0.0625", "7.9375"} {
		err := Encode(enc, fixedpoint.MustParse[fixedpoint.Q3_4](s))
		require.NoError(t, err)
	}

	dec := NewDecoder(Schema{}, control.NewDecoder(buf))
	for _, s := range []string{"2.0625", "-0.0625", "7.9375"} {
		v, err := Decode[fixedpoint.Q3_4](dec)
		require.NoError(t, err)
		require.Equal(t, s, v.String())
	}

	_, err := Decode[fixedpoint.Q3_4](dec)
	require.Equal(t, io.EOF, err)

	t.Run("wrong format", func(t *testing.T) {
		_, err := Scaled[fixedpoint.Q7_8](FromScaled(fixedpoint.MustParse[fixedpoint.Q3_4]("1")))
		require.Error(t, err)
		require.True(t, fixedpoint.ErrFormat.Has(err))
	})

	t.Run("interface format", func(t *testing.T) {
		_, err := Scaled[fixedpoint.Q](FromScaled(fixedpoint.MustParse[fixedpoint.Q3_4]("1")))
		require.Error(t, err)
		require.True(t, fixedpoint.ErrFormat.Has(err))
	})

	t.Run("null", func(t *testing.T) {
		_, err := Scaled[fixedpoint.Q3_4](Block{Null: true})
		require.Error(t, err)
	})
}

func TestLogger(t *testing.T) {
	defer SetLogger(nil)

	out := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})))

	enc := NewEncoder(Schema{}, control.NewEncoder(&bytes.Buffer{}))
	require.NoError(t, Encode(enc, fixedpoint.MustNew[fixedpoint.Q3_4](33)))
	require.Contains(t, out.String(), "format=Q3.4")
	require.Contains(t, out.String(), "raw=33")

	SetLogger(nil)
	require.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func BenchmarkEncode(b *testing.B) {
	enc := NewEncoder(Schema{}, control.NewEncoder(io.Discard))

	blk := &Block{
		Format: fixedpoint.MustFormat(15, 16),
		Raw:    -0x07ffff,
	}

	for n := 0; n < b.N; n++ {
		err := enc.Encode(blk)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	data := []byte{0x43, 0x03, 0x00, 0x00, 0x42}

	blk := Block{}

	for n := 0; n < b.N; n++ {
		dec := NewDecoder(Schema{}, control.NewDecoder(bytes.NewBuffer(data)))

		err := dec.Decode(&blk)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
