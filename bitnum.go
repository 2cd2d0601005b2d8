// Package bitnum provides fixed width bits, bit arrays, integers and floats
// which are stored one bit at a time.  See package bitmem for the implementation.
package bitnum

import (
	"encoding"
	"encoding/binary"

	"lukechampine.com/blake3"

	"myceliumweb.org/bitnum/bitmem"
)

const (
	// NibbleBits is the size of the smallest bit array.
	NibbleBits = 4
	ByteBits   = 8
	WordBits   = 16
	// MaxBits is the size of the widest type.
	MaxBits = 64

	// HashSize is the size of a Fingerprint in bytes.
	HashSize = 32
)

type (
	Bit  = bitmem.Bit
	Bool = bitmem.Bool

	Nibble = bitmem.B4
	Byte   = bitmem.B8
	Word   = bitmem.B16

	U8  = bitmem.U8
	U16 = bitmem.U16
	U32 = bitmem.U32
	U64 = bitmem.U64

	I8  = bitmem.I8
	I16 = bitmem.I16
	I32 = bitmem.I32
	I64 = bitmem.I64

	F32 = bitmem.F32
	F64 = bitmem.F64
)

// ID is a content identifier for a bit pattern.
type ID [HashSize]byte

// Hash calculates the hash of x.
// If tag == nil, then the hash is unkeyed.
// If tag != nil, then the hash will be keyed with the tag.
func Hash(tag *ID, x []byte) (ret ID) {
	var key []byte
	if tag != nil {
		key = tag[:]
	}
	h := blake3.New(HashSize, key)
	h.Write(x)
	h.Sum(ret[:0])
	return ret
}

// Fingerprint hashes the binary encoding of v, keyed by the width of the encoding in bits.
// Equal bit patterns of different widths have different fingerprints.
func Fingerprint(v interface {
	encoding.BinaryMarshaler
	Len() int
}) (ID, error) {
	data, err := v.MarshalBinary()
	if err != nil {
		return ID{}, err
	}
	return Hash(widthTag(v.Len()), data), nil
}

func widthTag(n int) *ID {
	var tag ID
	binary.LittleEndian.PutUint32(tag[:], uint32(n))
	return &tag
}
