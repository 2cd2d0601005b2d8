package bitmem

import (
	"iter"
	"strings"
)

// Array is the set of fixed-width bit storage layouts.
type Array interface {
	[4]Bit | [8]Bit | [16]Bit | [32]Bit | [64]Bit
}

// BitArray is a fixed length sequence of bits.  Index 0 is the least significant bit.
// BitArrays are values, all the methods with a value receiver return a new BitArray.
type BitArray[A Array] struct {
	bits A
}

type (
	B4  = BitArray[[4]Bit]
	B8  = BitArray[[8]Bit]
	B16 = BitArray[[16]Bit]
	B32 = BitArray[[32]Bit]
	B64 = BitArray[[64]Bit]
)

// WidthOf returns the number of bits in the layout A.
func WidthOf[A Array]() int {
	var a A
	return len(a)
}

// NewBitArray wraps a bit array. Only the low bit of each element is kept.
func NewBitArray[A Array](bits A) BitArray[A] {
	for i := 0; i < len(bits); i++ {
		bits[i] &= 1
	}
	return BitArray[A]{bits: bits}
}

// FromBits takes the first len(A) bits from bs.
// If there are fewer, the high order bits are Zero.
func FromBits[A Array](bs ...Bit) BitArray[A] {
	var ret BitArray[A]
	for i := 0; i < len(ret.bits) && i < len(bs); i++ {
		ret.bits[i] = bs[i] & 1
	}
	return ret
}

// CollectBits is like FromBits, but consumes an iterator.
// It stops pulling from seq once the array is full.
func CollectBits[A Array](seq iter.Seq[Bit]) BitArray[A] {
	var ret BitArray[A]
	i := 0
	for b := range seq {
		if i >= len(ret.bits) {
			break
		}
		ret.bits[i] = b & 1
		i++
	}
	return ret
}

// ArrayFromUint64 takes the low len(A) bits of x.
func ArrayFromUint64[A Array](x uint64) BitArray[A] {
	var ret BitArray[A]
	for i := 0; i < len(ret.bits); i++ {
		ret.bits[i] = NewBit(x >> i)
	}
	return ret
}

func (z BitArray[A]) Len() int {
	return len(z.bits)
}

// Bits returns a copy of the underlying array.
func (z BitArray[A]) Bits() A {
	return z.bits
}

// At returns the bit at i, it panics if i is out of range.
func (z BitArray[A]) At(i int) Bit {
	return z.bits[i]
}

func (z BitArray[A]) Get(i int) (Bit, error) {
	if err := z.checkIndex(i); err != nil {
		return 0, err
	}
	return z.bits[i], nil
}

// Set returns a copy of z with the bit at i replaced by b.
func (z BitArray[A]) Set(i int, b Bit) (BitArray[A], error) {
	if err := z.Put(i, b); err != nil {
		return z, err
	}
	return z, nil
}

// Put overwrites the bit at i in place.
// The caller must have exclusive access to z.
func (z *BitArray[A]) Put(i int, b Bit) error {
	if err := z.checkIndex(i); err != nil {
		return err
	}
	z.bits[i] = b & 1
	return nil
}

// Invert flips every bit in place.
// The caller must have exclusive access to z.
func (z *BitArray[A]) Invert() {
	for i := 0; i < len(z.bits); i++ {
		z.bits[i] = z.bits[i].Not()
	}
}

func (z BitArray[A]) Not() BitArray[A] {
	z.Invert()
	return z
}

func (z BitArray[A]) And(x BitArray[A]) BitArray[A] {
	return z.zip(x, Bit.And)
}

func (z BitArray[A]) Or(x BitArray[A]) BitArray[A] {
	return z.zip(x, Bit.Or)
}

func (z BitArray[A]) Xor(x BitArray[A]) BitArray[A] {
	return z.zip(x, Bit.Xor)
}

// ShiftLeft moves every bit k positions towards the most significant end.
// Vacated positions are Zero. Shifting by Len or more clears every bit.
func (z BitArray[A]) ShiftLeft(k uint) BitArray[A] {
	var ret BitArray[A]
	n := uint(len(z.bits))
	if k >= n {
		return ret
	}
	for i := k; i < n; i++ {
		ret.bits[i] = z.bits[i-k]
	}
	return ret
}

// ShiftRight moves every bit k positions towards the least significant end.
// Vacated positions are Zero. Shifting by Len or more clears every bit.
func (z BitArray[A]) ShiftRight(k uint) BitArray[A] {
	var ret BitArray[A]
	n := uint(len(z.bits))
	if k >= n {
		return ret
	}
	for i := uint(0); i < n-k; i++ {
		ret.bits[i] = z.bits[i+k]
	}
	return ret
}

// RotateLeft moves bits towards the most significant end, wrapping around.
// k is reduced modulo Len.
func (z BitArray[A]) RotateLeft(k uint) BitArray[A] {
	var ret BitArray[A]
	n := uint(len(z.bits))
	k %= n
	for i := uint(0); i < n; i++ {
		ret.bits[(i+k)%n] = z.bits[i]
	}
	return ret
}

// RotateRight moves bits towards the least significant end, wrapping around.
// k is reduced modulo Len.
func (z BitArray[A]) RotateRight(k uint) BitArray[A] {
	n := uint(len(z.bits))
	return z.RotateLeft(n - k%n)
}

// ReverseBits swaps the bit at i with the bit at Len-1-i.
func (z BitArray[A]) ReverseBits() BitArray[A] {
	var ret BitArray[A]
	n := len(z.bits)
	for i := 0; i < n; i++ {
		ret.bits[n-1-i] = z.bits[i]
	}
	return ret
}

func (z BitArray[A]) CountOnes() int {
	var ret int
	for i := 0; i < len(z.bits); i++ {
		if z.bits[i] == One {
			ret++
		}
	}
	return ret
}

func (z BitArray[A]) CountZeros() int {
	return len(z.bits) - z.CountOnes()
}

// MSB returns the most significant bit.
func (z BitArray[A]) MSB() Bit {
	return z.bits[len(z.bits)-1]
}

// Is returns True if z and x hold the same bit pattern.
func (z BitArray[A]) Is(x BitArray[A]) Bool {
	ret := True
	for i := 0; i < len(z.bits); i++ {
		ret = ret.And(z.bits[i].Is(x.bits[i]))
	}
	return ret
}

// All iterates over the bits from least to most significant.
func (z BitArray[A]) All() iter.Seq2[int, Bit] {
	return func(yield func(int, Bit) bool) {
		for i := 0; i < len(z.bits); i++ {
			if !yield(i, z.bits[i]) {
				return
			}
		}
	}
}

// Uint64 packs the bits into a machine word.
func (z BitArray[A]) Uint64() (ret uint64) {
	for i := 0; i < len(z.bits); i++ {
		ret |= uint64(z.bits[i]) << i
	}
	return ret
}

// String renders the bits most significant first.
func (z BitArray[A]) String() string {
	var sb strings.Builder
	sb.Grow(len(z.bits))
	for i := len(z.bits) - 1; i >= 0; i-- {
		sb.WriteString(z.bits[i].String())
	}
	return sb.String()
}

func (z BitArray[A]) zip(x BitArray[A], fn func(a, b Bit) Bit) BitArray[A] {
	var ret BitArray[A]
	for i := 0; i < len(z.bits); i++ {
		ret.bits[i] = fn(z.bits[i], x.bits[i])
	}
	return ret
}

func (z BitArray[A]) checkIndex(i int) error {
	if i < 0 || i >= len(z.bits) {
		return ErrIndexOutOfRange{Index: i, Len: len(z.bits)}
	}
	return nil
}
