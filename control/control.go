package control

import (
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("control")

// Type is a control block type. The first byte of a block matches a type when
// the bits outside of Mask equal Prefix.
type Type struct {
	Prefix byte
	Mask   byte
	Abbr   string
}

// Match returns true if this control type matches the given byte.
func (t Type) Match(b byte) bool {
	return b&^t.Mask == t.Prefix
}

func (t Type) String() string {
	return t.Abbr
}

// Scalar reports whether blocks of this type carry a complete value without
// any enclosing structure.
func (t Type) Scalar() bool {
	switch t {
	case Data, DataSize, Data1, Data2, DataSizeSize, Empty, Null:
		return true
	}

	return false
}

type types []Type

func (ts types) Match(b byte) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(b) {
			return t, true
		}
	}

	return t, false
}

// Parse returns the control block type of the first byte of a block.
func Parse(b byte) (t Type, err error) {
	t, ok := Types.Match(b)
	if !ok {
		return Unknown, Error.New("invalid control byte: %08b", b)
	}

	return t, nil
}

var (
	Unknown            = Type{}
	Data               = Type{0b_1000_0000, 0b_0111_1111, "d"}
	DataSize           = Type{0b_0100_0000, 0b_0011_1111, "dz"}
	Data1              = Type{0b_0010_0000, 0b_0001_1111, "d1"}
	Data2              = Type{0b_0001_0000, 0b_0000_1111, "d2"}
	DataSizeSize       = Type{0b_0000_1000, 0b_0000_0111, "dzz"}
	ContainerSymmetric = Type{0b_0000_0111, 0b_0000_0000, "cs"}
	ContainerBounded   = Type{0b_0000_0101, 0b_0000_0000, "cb"}
	ContainerUnbounded = Type{0b_0000_0110, 0b_0000_0000, "cu"}
	ContainerEnd       = Type{0b_0000_0100, 0b_0000_0000, "ce"}
	SkipSize           = Type{0b_0000_0010, 0b_0000_0001, "sz"}
	Empty              = Type{0b_0000_0001, 0b_0000_0000, "e"}
	Null               = Type{0b_0000_0000, 0b_0000_0000, "n"}

	Types = types{
		Data,
		DataSize,
		Data1,
		Data2,
		DataSizeSize,
		ContainerSymmetric,
		ContainerBounded,
		ContainerUnbounded,
		ContainerEnd,
		SkipSize,
		Empty,
		Null,
	}
)
