package bitmem

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Integer is a fixed width integer stored as a BitArray.
// T is the native integer type with the same width; it decides whether the bits are
// read as unsigned or as two's complement.
//
// Addition, subtraction and negation run bit by bit through a ripple-carry chain.
// Multiplication, division, remainder, comparison and shifts convert to T,
// use the wrapping native operation, and convert back.
type Integer[T constraints.Integer, A Array] struct {
	bits BitArray[A]
}

type (
	U8  = Integer[uint8, [8]Bit]
	U16 = Integer[uint16, [16]Bit]
	U32 = Integer[uint32, [32]Bit]
	U64 = Integer[uint64, [64]Bit]

	I8  = Integer[int8, [8]Bit]
	I16 = Integer[int16, [16]Bit]
	I32 = Integer[int32, [32]Bit]
	I64 = Integer[int64, [64]Bit]
)

func NewU8[T constraints.Integer](x T) U8 { return FromNative[uint8, [8]Bit](uint8(x)) }
func NewU16[T constraints.Integer](x T) U16 { return FromNative[uint16, [16]Bit](uint16(x)) }
func NewU32[T constraints.Integer](x T) U32 { return FromNative[uint32, [32]Bit](uint32(x)) }
func NewU64[T constraints.Integer](x T) U64 { return FromNative[uint64, [64]Bit](uint64(x)) }
func NewI8[T constraints.Integer](x T) I8 { return FromNative[int8, [8]Bit](int8(x)) }
func NewI16[T constraints.Integer](x T) I16 { return FromNative[int16, [16]Bit](int16(x)) }
func NewI32[T constraints.Integer](x T) I32 { return FromNative[int32, [32]Bit](int32(x)) }
func NewI64[T constraints.Integer](x T) I64 { return FromNative[int64, [64]Bit](int64(x)) }

// FromNative encodes x one bit at a time.
func FromNative[T constraints.Integer, A Array](x T) Integer[T, A] {
	return Integer[T, A]{bits: ArrayFromUint64[A](uint64(x))}
}

// FromArray reinterprets a bit pattern as an integer.
func FromArray[T constraints.Integer, A Array](bits BitArray[A]) Integer[T, A] {
	return Integer[T, A]{bits: bits}
}

// MaxValue returns the largest representable value.
func MaxValue[T constraints.Integer, A Array]() Integer[T, A] {
	var ret Integer[T, A]
	ret.bits.Invert()
	if isSigned[T]() {
		ret.bits.bits[len(ret.bits.bits)-1] = Zero
	}
	return ret
}

// MinValue returns the smallest representable value.
func MinValue[T constraints.Integer, A Array]() Integer[T, A] {
	var ret Integer[T, A]
	if isSigned[T]() {
		ret.bits.bits[len(ret.bits.bits)-1] = One
	}
	return ret
}

// Native decodes z into the native integer type.
func (z Integer[T, A]) Native() T {
	return T(z.bits.Uint64())
}

// Bits returns the stored bit pattern.
func (z Integer[T, A]) Bits() BitArray[A] {
	return z.bits
}

func (z Integer[T, A]) Len() int {
	return z.bits.Len()
}

func (z Integer[T, A]) Signed() bool {
	return isSigned[T]()
}

func (z Integer[T, A]) Add(x Integer[T, A]) Integer[T, A] {
	ret, _ := z.AddCarry(x)
	return ret
}

// AddCarry is Add, but also returns the carry out of the most significant bit.
func (z Integer[T, A]) AddCarry(x Integer[T, A]) (Integer[T, A], Bit) {
	sum, carry := RippleAdd(z.bits, x.bits, Zero)
	return Integer[T, A]{bits: sum}, carry
}

func (z Integer[T, A]) Sub(x Integer[T, A]) Integer[T, A] {
	ret, _ := z.SubBorrow(x)
	return ret
}

// SubBorrow is Sub, but also returns the borrow out of the most significant bit.
func (z Integer[T, A]) SubBorrow(x Integer[T, A]) (Integer[T, A], Bit) {
	diff, borrow := RippleSub(z.bits, x.bits, Zero)
	return Integer[T, A]{bits: diff}, borrow
}

// Neg returns the two's complement negation of z.
// For unsigned integers this is 2^Len - z.
func (z Integer[T, A]) Neg() Integer[T, A] {
	return Integer[T, A]{bits: RippleNeg(z.bits)}
}

func (z Integer[T, A]) Mul(x Integer[T, A]) Integer[T, A] {
	return FromNative[T, A](z.Native() * x.Native())
}

// Div truncates towards zero.
func (z Integer[T, A]) Div(x Integer[T, A]) (Integer[T, A], error) {
	if x.IsZero().Go() {
		return z, ErrDivisionByZero
	}
	return FromNative[T, A](z.Native() / x.Native()), nil
}

// Rem has the sign of the dividend.
func (z Integer[T, A]) Rem(x Integer[T, A]) (Integer[T, A], error) {
	if x.IsZero().Go() {
		return z, ErrDivisionByZero
	}
	return FromNative[T, A](z.Native() % x.Native()), nil
}

// Shl shifts towards the most significant bit. Shifting by Len or more yields zero.
func (z Integer[T, A]) Shl(n uint) Integer[T, A] {
	if n >= uint(z.Len()) {
		return Integer[T, A]{}
	}
	return FromNative[T, A](z.Native() << n)
}

// Shr shifts towards the least significant bit.
// Signed integers are shifted arithmetically, copying the sign bit.
// Shifting by Len or more yields zero, regardless of sign.
func (z Integer[T, A]) Shr(n uint) Integer[T, A] {
	if n >= uint(z.Len()) {
		return Integer[T, A]{}
	}
	return FromNative[T, A](z.Native() >> n)
}

func (z Integer[T, A]) Not() Integer[T, A] {
	return Integer[T, A]{bits: z.bits.Not()}
}

func (z Integer[T, A]) And(x Integer[T, A]) Integer[T, A] {
	return Integer[T, A]{bits: z.bits.And(x.bits)}
}

func (z Integer[T, A]) Or(x Integer[T, A]) Integer[T, A] {
	return Integer[T, A]{bits: z.bits.Or(x.bits)}
}

func (z Integer[T, A]) Xor(x Integer[T, A]) Integer[T, A] {
	return Integer[T, A]{bits: z.bits.Xor(x.bits)}
}

func (z Integer[T, A]) RotateLeft(n uint) Integer[T, A] {
	return Integer[T, A]{bits: z.bits.RotateLeft(n)}
}

func (z Integer[T, A]) RotateRight(n uint) Integer[T, A] {
	return Integer[T, A]{bits: z.bits.RotateRight(n)}
}

func (z Integer[T, A]) ReverseBits() Integer[T, A] {
	return Integer[T, A]{bits: z.bits.ReverseBits()}
}

func (z Integer[T, A]) CountOnes() int {
	return z.bits.CountOnes()
}

func (z Integer[T, A]) CountZeros() int {
	return z.bits.CountZeros()
}

// Compare orders by represented value.
func (z Integer[T, A]) Compare(x Integer[T, A]) int {
	a, b := z.Native(), x.Native()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (z Integer[T, A]) Less(x Integer[T, A]) Bool {
	return NewBool(z.Compare(x) < 0)
}

func (z Integer[T, A]) Is(x Integer[T, A]) Bool {
	return z.bits.Is(x.bits)
}

func (z Integer[T, A]) IsZero() Bool {
	return NewBool(z.bits.CountOnes() == 0)
}

// IsNegative is always False for unsigned integers.
func (z Integer[T, A]) IsNegative() Bool {
	if !isSigned[T]() {
		return False
	}
	return z.bits.MSB().AsBool()
}

// String renders the decimal value.
func (z Integer[T, A]) String() string {
	if isSigned[T]() {
		return strconv.FormatInt(int64(z.Native()), 10)
	}
	return strconv.FormatUint(uint64(z.Native()), 10)
}

// Binary renders the bit pattern, most significant bit first.
func (z Integer[T, A]) Binary() string {
	return z.bits.String()
}

func isSigned[T constraints.Integer]() bool {
	return ^T(0) < 0
}
