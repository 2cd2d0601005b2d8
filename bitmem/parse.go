package bitmem

import (
	"golang.org/x/exp/constraints"
)

// ParseBits parses a string of '0' and '1' characters, most significant first.
// The string may be shorter than the array, the missing high order bits are Zero.
func ParseBits[A Array](s string) (BitArray[A], error) {
	var ret BitArray[A]
	w := ret.Len()
	if len(s) == 0 {
		return ret, &ErrParse{Input: s, Pos: -1, Width: w, Err: ErrParseSyntax}
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0', '1':
		default:
			return ret, &ErrParse{Input: s, Pos: i, Width: w, Err: ErrParseSyntax}
		}
	}
	if len(s) > w {
		return ret, &ErrParse{Input: s, Pos: -1, Width: w, Err: ErrParseRange}
	}
	for i := 0; i < len(s); i++ {
		ret.bits[len(s)-1-i] = Bit(s[i] - '0')
	}
	return ret, nil
}

// Parse parses a binary string into an integer. See ParseBits.
func Parse[T constraints.Integer, A Array](s string) (Integer[T, A], error) {
	bits, err := ParseBits[A](s)
	if err != nil {
		return Integer[T, A]{}, err
	}
	return FromArray[T](bits), nil
}

func ParseU8(s string) (U8, error) { return Parse[uint8, [8]Bit](s) }
func ParseU16(s string) (U16, error) { return Parse[uint16, [16]Bit](s) }
func ParseU32(s string) (U32, error) { return Parse[uint32, [32]Bit](s) }
func ParseU64(s string) (U64, error) { return Parse[uint64, [64]Bit](s) }
