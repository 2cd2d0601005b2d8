// package bitmem implements fixed width numbers which are stored as arrays of bits.
//
// Bit and Bool are the single bit types, BitArray is a plain container of bits,
// Integer interprets a BitArray as an unsigned or two's complement integer and
// Float interprets a BitArray as an IEEE-754 encoding.
//
// Everything in this package is a value.  Methods return new values instead of
// modifying their receiver; the only exceptions are BitArray.Put and BitArray.Invert.
package bitmem

// Bitwise is implemented by values that support position-wise logic.
type Bitwise[V any] interface {
	Not() V
	And(V) V
	Or(V) V
	Xor(V) V
}

// Arith is implemented by every numeric family.
type Arith[V any] interface {
	Add(V) V
	Sub(V) V
	Mul(V) V
}

// IntArith is implemented by the integer families.
// Division and remainder fail with ErrDivisionByZero.
type IntArith[V any] interface {
	Arith[V]
	Bitwise[V]
	Neg() V
	Div(V) (V, error)
	Rem(V) (V, error)
}

// FloatArith is implemented by the floating point families.
// Division never fails, it produces an infinity or NaN instead.
type FloatArith[V any] interface {
	Arith[V]
	Neg() V
	Div(V) V
}

// Rotator is implemented by values which can be rotated and reversed.
type Rotator[V any] interface {
	RotateLeft(uint) V
	RotateRight(uint) V
	ReverseBits() V
	CountOnes() int
	CountZeros() int
}

var (
	_ Bitwise[B4]  = B4{}
	_ Rotator[B64] = B64{}

	_ IntArith[U8]  = U8{}
	_ IntArith[U16] = U16{}
	_ IntArith[U32] = U32{}
	_ IntArith[U64] = U64{}
	_ IntArith[I8]  = I8{}
	_ IntArith[I16] = I16{}
	_ IntArith[I32] = I32{}
	_ IntArith[I64] = I64{}
	_ Rotator[U8]   = U8{}

	_ FloatArith[F32] = F32{}
	_ FloatArith[F64] = F64{}
)
