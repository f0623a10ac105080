package control

import (
	"io"
)

// ReadField advances d to the next field and returns its data. null is true
// for a Null block. An Empty block is an error, since a scalar value always
// has data. It returns io.EOF when no fields remain.
func ReadField(d Decoder) (data []byte, null bool, err error) {
	if !d.Next() {
		if d.Err() != nil {
			return nil, false, d.Err()
		}

		return nil, false, io.EOF
	}

	switch d.Type() {
	case Null:
		return nil, true, nil
	case Empty:
		return nil, false, Error.New("unexpected empty block")
	}

	data, err = d.Data()
	if err != nil {
		return nil, false, err
	}

	return data, false, nil
}

// WriteField writes data in a data block, or a Null block when null is set.
func WriteField(e Encoder, data []byte, null bool) (err error) {
	if null {
		return e.Null()
	}

	return e.Data(data)
}
