package bitmem

import (
	"math"
	"strconv"
)

// FloatNative is the set of native IEEE-754 types.
type FloatNative interface {
	float32 | float64
}

// FloatArray is the set of layouts that hold an IEEE-754 binary interchange encoding.
type FloatArray interface {
	[32]Bit | [64]Bit
}

// Float holds the IEEE-754 encoding of a T.
// Moving between Float and T reinterprets the bits; NaN payloads, signed zeros,
// infinities and subnormals all survive.
//
// Arithmetic is done by T. The sign, exponent and mantissa are available as bit fields.
type Float[T FloatNative, A FloatArray] struct {
	bits BitArray[A]
}

type (
	F32 = Float[float32, [32]Bit]
	F64 = Float[float64, [64]Bit]
)

func NewF32(x float32) F32 { return FromFloat[float32, [32]Bit](x) }
func NewF64(x float64) F64 { return FromFloat[float64, [64]Bit](x) }

func FromFloat[T FloatNative, A FloatArray](x T) Float[T, A] {
	var raw uint64
	switch x := any(x).(type) {
	case float32:
		raw = uint64(math.Float32bits(x))
	case float64:
		raw = math.Float64bits(x)
	}
	return Float[T, A]{bits: ArrayFromUint64[A](raw)}
}

// FloatFromArray reinterprets a bit pattern as a float.
func FloatFromArray[T FloatNative, A FloatArray](bits BitArray[A]) Float[T, A] {
	return Float[T, A]{bits: bits}
}

func (z Float[T, A]) Native() T {
	raw := z.bits.Uint64()
	var ret T
	switch any(ret).(type) {
	case float32:
		ret = any(math.Float32frombits(uint32(raw))).(T)
	case float64:
		ret = any(math.Float64frombits(raw)).(T)
	}
	return ret
}

func (z Float[T, A]) Bits() BitArray[A] {
	return z.bits
}

func (z Float[T, A]) Len() int {
	return z.bits.Len()
}

// ExponentBits is the width of the exponent field.
func (z Float[T, A]) ExponentBits() int {
	if z.Len() == 32 {
		return 8
	}
	return 11
}

// MantissaBits is the width of the stored fraction, excluding the implicit leading bit.
func (z Float[T, A]) MantissaBits() int {
	return z.Len() - 1 - z.ExponentBits()
}

func (z Float[T, A]) Sign() Bit {
	return z.bits.MSB()
}

// Exponent returns the biased exponent field.
func (z Float[T, A]) Exponent() uint64 {
	return z.field(z.MantissaBits(), z.ExponentBits())
}

// Mantissa returns the fraction field.
func (z Float[T, A]) Mantissa() uint64 {
	return z.field(0, z.MantissaBits())
}

func (z Float[T, A]) Add(x Float[T, A]) Float[T, A] {
	return FromFloat[T, A](z.Native() + x.Native())
}

func (z Float[T, A]) Sub(x Float[T, A]) Float[T, A] {
	return FromFloat[T, A](z.Native() - x.Native())
}

func (z Float[T, A]) Mul(x Float[T, A]) Float[T, A] {
	return FromFloat[T, A](z.Native() * x.Native())
}

// Div follows IEEE-754: x/0 is a signed infinity, 0/0 is NaN.
func (z Float[T, A]) Div(x Float[T, A]) Float[T, A] {
	return FromFloat[T, A](z.Native() / x.Native())
}

// Neg flips the sign bit. NaNs keep their payload.
func (z Float[T, A]) Neg() Float[T, A] {
	n := z.Len() - 1
	z.bits.bits[n] = z.bits.bits[n].Not()
	return z
}

// Abs clears the sign bit.
func (z Float[T, A]) Abs() Float[T, A] {
	z.bits.bits[z.Len()-1] = Zero
	return z
}

func (z Float[T, A]) IsNaN() Bool {
	return NewBool(z.expAllOnes() && z.Mantissa() != 0)
}

func (z Float[T, A]) IsInf() Bool {
	return NewBool(z.expAllOnes() && z.Mantissa() == 0)
}

// IsZero is True for both +0 and -0.
func (z Float[T, A]) IsZero() Bool {
	return NewBool(z.Exponent() == 0 && z.Mantissa() == 0)
}

// Equal compares numerically: NaN is not equal to anything and +0 equals -0.
func (z Float[T, A]) Equal(x Float[T, A]) Bool {
	return NewBool(z.Native() == x.Native())
}

func (z Float[T, A]) Less(x Float[T, A]) Bool {
	return NewBool(z.Native() < x.Native())
}

// Is compares bit patterns.
func (z Float[T, A]) Is(x Float[T, A]) Bool {
	return z.bits.Is(x.bits)
}

func (z Float[T, A]) String() string {
	return strconv.FormatFloat(float64(z.Native()), 'g', -1, z.Len())
}

func (z Float[T, A]) Binary() string {
	return z.bits.String()
}

func (z Float[T, A]) expAllOnes() bool {
	return z.Exponent() == 1<<z.ExponentBits()-1
}

func (z Float[T, A]) field(beg, n int) (ret uint64) {
	for i := 0; i < n; i++ {
		ret |= uint64(z.bits.bits[beg+i]) << i
	}
	return ret
}
