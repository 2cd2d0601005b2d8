package bitmem

import (
	"golang.org/x/exp/constraints"
)

// Bit is a single binary digit.  The only valid values are Zero and One.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// NewBit returns the low bit of x.
func NewBit[T constraints.Integer](x T) Bit {
	return Bit(x & 1)
}

// BitFromBool is the inverse of Bit.AsBool
func BitFromBool(x Bool) Bit {
	if x == True {
		return One
	}
	return Zero
}

func (b Bit) Not() Bit {
	switch b {
	case Zero:
		return One
	default:
		return Zero
	}
}

func (b Bit) And(c Bit) Bit {
	if b == One && c == One {
		return One
	}
	return Zero
}

func (b Bit) Or(c Bit) Bit {
	if b == One || c == One {
		return One
	}
	return Zero
}

func (b Bit) Xor(c Bit) Bit {
	if b != c {
		return One
	}
	return Zero
}

func (b Bit) Nand(c Bit) Bit {
	return b.And(c).Not()
}

func (b Bit) Nor(c Bit) Bit {
	return b.Or(c).Not()
}

func (b Bit) Xnor(c Bit) Bit {
	return b.Xor(c).Not()
}

// Is returns True if b and c are the same bit.
func (b Bit) Is(c Bit) Bool {
	return BoolFromBit(b.Xnor(c))
}

// Compare returns -1, 0, or 1. Zero orders before One.
func (b Bit) Compare(c Bit) int {
	switch {
	case b == c:
		return 0
	case b == Zero:
		return -1
	default:
		return 1
	}
}

func (b Bit) IsZero() Bool {
	return b.Is(Zero)
}

func (b Bit) IsOne() Bool {
	return b.Is(One)
}

// AsBool maps Zero to False and One to True.
func (b Bit) AsBool() Bool {
	return BoolFromBit(b)
}

func (b Bit) String() string {
	if b == One {
		return "1"
	}
	return "0"
}
