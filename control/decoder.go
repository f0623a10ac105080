package control

import (
	"errors"
	"io"
	"math/big"

	"github.com/calebcase/oops"
)

var ErrInvalidOperation = Error.New("invalid operation")

// Decoder reads scalar control blocks. Container and skip blocks are
// reported as errors.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader

	consumed uint64

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return &decoder{
		r: r,
	}
}

func (d *decoder) read(b []byte) (err error) {
	_, err = io.ReadFull(d.r, b)
	if err != nil {
		return Error.Wrap(err)
	}

	d.consumed += uint64(len(b))

	return nil
}

func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if !d.finished && d.t != Unknown {
		_, d.err = d.Data()
		if d.err != nil {
			return false
		}
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown

	d.size = 0
	d.data = d.data[:0]
	d.finished = false

	// Read the field control block.
	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if !errors.Is(err, io.EOF) {
			d.err = Error.Wrap(err)
		}

		return false
	}

	d.consumed += 1

	t, err := Parse(d.value[0])
	if err != nil {
		d.err = err

		return false
	}

	if !t.Scalar() {
		d.err = Error.New("unsupported field %q: %08b", t.Abbr, d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the field.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeBytes := make([]byte, uint64(d.value[0]&d.t.Mask)+1)

		err = d.read(sizeBytes)
		if err != nil {
			return 0, err
		}

		size := new(big.Int).SetBytes(sizeBytes)
		size.Add(size, big.NewInt(1))
		if !size.IsUint64() {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		d.size = size.Uint64()
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads data bits and bytes from the field. If the field does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = d.data[:0]
			d.err = err
		}
	}()

	if d.t != Data && d.t != Data1 && d.t != Data2 && d.t != DataSize && d.t != DataSizeSize {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if len(d.data) != 0 {
		return d.data, nil
	}

	_, err = d.Size()
	if err != nil {
		return nil, err
	}

	switch d.t {
	case Data:
		d.data = []byte{d.value[0] & d.t.Mask}
	case Data1, Data2:
		d.data = make([]byte, d.size)
		d.data[0] = d.value[0] & d.t.Mask

		err = d.read(d.data[1:])
		if err != nil {
			return nil, err
		}
	case DataSize, DataSizeSize:
		d.data = make([]byte, d.size)

		err = d.read(d.data)
		if err != nil {
			return nil, err
		}
	}

	d.finished = true

	return d.data, nil
}
