// Package bitbuf packs single bits into bytes, least significant bit first.
package bitbuf

import (
	"fmt"
)

type Bit = uint8

type Word = uint8

const WordBits = 8

type Buf struct {
	// l is the length of the buffer in bits.
	l int
	d []Word
}

// New returns a zeroed buffer holding l bits.
func New(l int) Buf {
	return Buf{
		l: l,
		d: make([]Word, ByteLen(l)),
	}
}

// FromBytes returns a buffer of l bits backed by d.
// d must be exactly ByteLen(l) bytes long.
func FromBytes(d []byte, l int) (Buf, error) {
	if len(d) != ByteLen(l) {
		return Buf{}, fmt.Errorf("bitbuf: %d bits need %d bytes, have %d", l, ByteLen(l), len(d))
	}
	return Buf{d: d, l: l}, nil
}

func (b Buf) Len() int {
	return b.l
}

func (b Buf) Bytes() []byte {
	return b.d
}

func (b Buf) Put(i int, x Bit) {
	b.checkIndex(i)
	putBit(b.d, i, x)
}

func (b Buf) Get(i int) Bit {
	b.checkIndex(i)
	return getBit(b.d, i)
}

// CheckPadding returns an error if any of the bits past Len are set.
func (b Buf) CheckPadding() error {
	for i := b.l; i < len(b.d)*WordBits; i++ {
		if getBit(b.d, i) != 0 {
			return fmt.Errorf("bitbuf: padding bit %d is set", i)
		}
	}
	return nil
}

func (b Buf) checkIndex(i int) {
	if i < 0 || i >= b.l {
		panic(fmt.Sprintf("bitbuf: index %d out of bounds. len=%d", i, b.l))
	}
}

// ByteLen is the number of bytes needed to hold l bits.
func ByteLen(l int) int {
	return divCeil(l, WordBits)
}

func putBit(d []Word, i int, x Bit) {
	x &= 1 // ensure only the low bit is set.
	byteIndex := i / WordBits
	bitPos := i % WordBits

	d[byteIndex] = (d[byteIndex] &^ (1 << bitPos)) | (Word(x) << bitPos)
}

func getBit(d []Word, i int) Bit {
	byteIndex := i / WordBits
	bitPos := i % WordBits
	return Bit(d[byteIndex]>>bitPos) & 1
}

func divCeil(a, b int) int {
	ret := a / b
	if a%b > 0 {
		ret++
	}
	return ret
}
