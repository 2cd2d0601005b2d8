package bitmem

import (
	"encoding"

	"myceliumweb.org/bitnum/internal/bitbuf"
)

var (
	_ encoding.BinaryMarshaler   = B4{}
	_ encoding.BinaryUnmarshaler = &B4{}
	_ encoding.BinaryMarshaler   = U64{}
	_ encoding.BinaryUnmarshaler = &I32{}
	_ encoding.BinaryMarshaler   = F64{}
	_ encoding.BinaryUnmarshaler = &F32{}
)

// EncodedLen is the number of bytes in the binary encoding of a BitArray[A].
func EncodedLen[A Array]() int {
	return bitbuf.ByteLen(WidthOf[A]())
}

func (z BitArray[A]) encode(bb bitbuf.Buf) {
	for i := 0; i < len(z.bits); i++ {
		bb.Put(i, uint8(z.bits[i]))
	}
}

func (z *BitArray[A]) decode(bb bitbuf.Buf) {
	for i := 0; i < len(z.bits); i++ {
		z.bits[i] = Bit(bb.Get(i))
	}
}

// MarshalBinary packs the bits least significant first.
// Unused bits in the last byte are zero.
func (z BitArray[A]) MarshalBinary() ([]byte, error) {
	bb := bitbuf.New(len(z.bits))
	z.encode(bb)
	return bb.Bytes(), nil
}

func (z *BitArray[A]) UnmarshalBinary(data []byte) error {
	if want := EncodedLen[A](); len(data) != want {
		return ErrEncodingLength{Want: want, Got: len(data)}
	}
	bb, err := bitbuf.FromBytes(data, len(z.bits))
	if err != nil {
		return err
	}
	if err := bb.CheckPadding(); err != nil {
		return err
	}
	z.decode(bb)
	return nil
}

func (z Integer[T, A]) MarshalBinary() ([]byte, error) {
	return z.bits.MarshalBinary()
}

func (z *Integer[T, A]) UnmarshalBinary(data []byte) error {
	return z.bits.UnmarshalBinary(data)
}

func (z Float[T, A]) MarshalBinary() ([]byte, error) {
	return z.bits.MarshalBinary()
}

func (z *Float[T, A]) UnmarshalBinary(data []byte) error {
	return z.bits.UnmarshalBinary(data)
}
