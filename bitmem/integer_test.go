package bitmem_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myceliumweb.org/bitnum/bitmem"
	"myceliumweb.org/bitnum/internal/testutil"
)

func TestU8RoundTrip(t *testing.T) {
	t.Parallel()
	for i := 0; i <= math.MaxUint8; i++ {
		x := uint8(i)
		require.Equal(t, x, bitmem.NewU8(x).Native())
	}
}

func TestI8RoundTrip(t *testing.T) {
	t.Parallel()
	for i := math.MinInt8; i <= math.MaxInt8; i++ {
		x := int8(i)
		require.Equal(t, x, bitmem.NewI8(x).Native())
	}
}

func TestWideRoundTrip(t *testing.T) {
	t.Parallel()
	for _, x := range testutil.Uint64s(t, 200) {
		require.Equal(t, uint16(x), bitmem.NewU16(uint16(x)).Native())
		require.Equal(t, uint32(x), bitmem.NewU32(uint32(x)).Native())
		require.Equal(t, x, bitmem.NewU64(x).Native())
		require.Equal(t, int16(x), bitmem.NewI16(int16(x)).Native())
		require.Equal(t, int32(x), bitmem.NewI32(int32(x)).Native())
		require.Equal(t, int64(x), bitmem.NewI64(int64(x)).Native())
	}
}

// TestU8AddSubExhaustive checks every pair of 8 bit operands against native wrapping arithmetic.
func TestU8AddSubExhaustive(t *testing.T) {
	t.Parallel()
	for a := 0; a <= math.MaxUint8; a++ {
		for b := 0; b <= math.MaxUint8; b++ {
			x, y := bitmem.NewU8(a), bitmem.NewU8(b)
			if got, want := x.Add(y).Native(), uint8(a)+uint8(b); got != want {
				t.Fatalf("%d + %d = %d, want %d", a, b, got, want)
			}
			if got, want := x.Sub(y).Native(), uint8(a)-uint8(b); got != want {
				t.Fatalf("%d - %d = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestI8AddSubExhaustive(t *testing.T) {
	t.Parallel()
	for a := math.MinInt8; a <= math.MaxInt8; a++ {
		for b := math.MinInt8; b <= math.MaxInt8; b++ {
			x, y := bitmem.NewI8(a), bitmem.NewI8(b)
			if got, want := x.Add(y).Native(), int8(a)+int8(b); got != want {
				t.Fatalf("%d + %d = %d, want %d", a, b, got, want)
			}
			if got, want := x.Sub(y).Native(), int8(a)-int8(b); got != want {
				t.Fatalf("%d - %d = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestWideArith(t *testing.T) {
	t.Parallel()
	xs := testutil.Uint64s(t, 40)
	for i, a := range xs {
		for _, b := range xs[i:] {
			checkArith(t, bitmem.NewU16(a), bitmem.NewU16(b), uint16(a), uint16(b))
			checkArith(t, bitmem.NewU32(a), bitmem.NewU32(b), uint32(a), uint32(b))
			checkArith(t, bitmem.NewU64(a), bitmem.NewU64(b), a, b)
			checkArith(t, bitmem.NewI16(a), bitmem.NewI16(b), int16(a), int16(b))
			checkArith(t, bitmem.NewI32(a), bitmem.NewI32(b), int32(a), int32(b))
			checkArith(t, bitmem.NewI64(a), bitmem.NewI64(b), int64(a), int64(b))
		}
	}
}

type nativeInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64
}

func checkArith[T nativeInt, A bitmem.Array](t *testing.T, x, y bitmem.Integer[T, A], a, b T) {
	t.Helper()
	require.Equal(t, a+b, x.Add(y).Native(), "%v + %v", a, b)
	require.Equal(t, a-b, x.Sub(y).Native(), "%v - %v", a, b)
	require.Equal(t, a*b, x.Mul(y).Native(), "%v * %v", a, b)
	require.Equal(t, -a, x.Neg().Native(), "-%v", a)
	require.Equal(t, ^a, x.Not().Native(), "^%v", a)
	require.Equal(t, a&b, x.And(y).Native())
	require.Equal(t, a|b, x.Or(y).Native())
	require.Equal(t, a^b, x.Xor(y).Native())
	if b != 0 {
		q, err := x.Div(y)
		require.NoError(t, err)
		require.Equal(t, a/b, q.Native(), "%v / %v", a, b)
		r, err := x.Rem(y)
		require.NoError(t, err)
		require.Equal(t, a%b, r.Native(), "%v %% %v", a, b)
	}
	var cmp int
	switch {
	case a < b:
		cmp = -1
	case a > b:
		cmp = 1
	}
	require.Equal(t, cmp, x.Compare(y))
	require.Equal(t, bitmem.NewBool(a < b), x.Less(y))
}

func TestWraparound(t *testing.T) {
	t.Parallel()
	require.Equal(t, uint8(0), bitmem.NewU8(255).Add(bitmem.NewU8(1)).Native())
	require.Equal(t, uint8(255), bitmem.NewU8(0).Sub(bitmem.NewU8(1)).Native())
	require.Equal(t, int8(-128), bitmem.NewI8(127).Add(bitmem.NewI8(1)).Native())
	require.Equal(t, int8(127), bitmem.NewI8(-128).Sub(bitmem.NewI8(1)).Native())
	require.Equal(t, uint64(0), bitmem.NewU64(uint64(math.MaxUint64)).Add(bitmem.NewU64(1)).Native())
	require.Equal(t, int64(math.MinInt64), bitmem.NewI64(math.MaxInt64).Add(bitmem.NewI64(1)).Native())

	sum, carry := bitmem.NewU8(200).AddCarry(bitmem.NewU8(100))
	require.Equal(t, uint8(44), sum.Native())
	require.Equal(t, bitmem.One, carry)
	_, carry = bitmem.NewU8(100).AddCarry(bitmem.NewU8(100))
	require.Equal(t, bitmem.Zero, carry)

	diff, borrow := bitmem.NewU16(1).SubBorrow(bitmem.NewU16(2))
	require.Equal(t, uint16(math.MaxUint16), diff.Native())
	require.Equal(t, bitmem.One, borrow)
}

func TestDivisionByZero(t *testing.T) {
	t.Parallel()
	tcs := []func() error{
		func() error { _, err := bitmem.NewU8(1).Div(bitmem.NewU8(0)); return err },
		func() error { _, err := bitmem.NewU16(1).Div(bitmem.NewU16(0)); return err },
		func() error { _, err := bitmem.NewU32(1).Div(bitmem.NewU32(0)); return err },
		func() error { _, err := bitmem.NewU64(1).Div(bitmem.NewU64(0)); return err },
		func() error { _, err := bitmem.NewI8(1).Div(bitmem.NewI8(0)); return err },
		func() error { _, err := bitmem.NewI16(1).Div(bitmem.NewI16(0)); return err },
		func() error { _, err := bitmem.NewI32(1).Div(bitmem.NewI32(0)); return err },
		func() error { _, err := bitmem.NewI64(1).Div(bitmem.NewI64(0)); return err },
		func() error { _, err := bitmem.NewU8(1).Rem(bitmem.NewU8(0)); return err },
		func() error { _, err := bitmem.NewI64(1).Rem(bitmem.NewI64(0)); return err },
	}
	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.True(t, errors.Is(tc(), bitmem.ErrDivisionByZero))
		})
	}
}

func TestSignedDivision(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		A, B int8
		Q, R int8
	}{
		{7, 2, 3, 1},
		{-7, 2, -3, -1},
		{7, -2, -3, 1},
		{-7, -2, 3, -1},
		{math.MinInt8, -1, math.MinInt8, 0},
	}
	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			q, err := bitmem.NewI8(tc.A).Div(bitmem.NewI8(tc.B))
			require.NoError(t, err)
			require.Equal(t, tc.Q, q.Native())
			r, err := bitmem.NewI8(tc.A).Rem(bitmem.NewI8(tc.B))
			require.NoError(t, err)
			require.Equal(t, tc.R, r.Native())
		})
	}
}

func TestIntegerStructural(t *testing.T) {
	t.Parallel()
	x := bitmem.NewU8(0b1100_1010)
	require.Equal(t, uint8(0b0101_0011), x.ReverseBits().Native())
	require.Equal(t, uint8(0b0010_1011), x.RotateLeft(2).Native())
	require.Equal(t, uint8(0b1011_0010), x.RotateRight(2).Native())
	require.Equal(t, 4, x.CountOnes())

	for _, v := range testutil.Uint64s(t, 50) {
		y := bitmem.NewU32(v)
		require.Equal(t, y, y.ReverseBits().ReverseBits())
		require.Equal(t, 32, y.CountOnes()+y.CountZeros())
		for _, k := range []uint{0, 1, 31, 32, 33, 100} {
			require.Equal(t, y, y.RotateLeft(k).RotateRight(k))
			require.Equal(t, y.RotateLeft(k), y.RotateLeft(k%32))
		}
		z := bitmem.NewI64(v)
		require.Equal(t, 64, z.CountOnes()+z.CountZeros())
	}
}

func TestShifts(t *testing.T) {
	t.Parallel()
	require.Equal(t, uint8(0), bitmem.NewU8(0xff).Shl(8).Native())
	require.Equal(t, uint8(0), bitmem.NewU8(0xff).Shr(8).Native())
	require.Equal(t, uint8(0xf0), bitmem.NewU8(0xff).Shl(4).Native())
	require.Equal(t, int8(-4), bitmem.NewI8(-16).Shr(2).Native())
	require.Equal(t, int8(0), bitmem.NewI8(-1).Shr(100).Native())
	require.Equal(t, int16(0), bitmem.NewI16(-1).Shl(16).Native())
	require.Equal(t, int8(-1), bitmem.NewI8(-1).Shr(7).Native())
}

func TestShiftSaturation(t *testing.T) {
	t.Parallel()
	for _, v := range testutil.Uint64s(t, 20) {
		checkShiftSaturation[uint8, [8]bitmem.Bit](t, v)
		checkShiftSaturation[uint16, [16]bitmem.Bit](t, v)
		checkShiftSaturation[uint32, [32]bitmem.Bit](t, v)
		checkShiftSaturation[uint64, [64]bitmem.Bit](t, v)
		checkShiftSaturation[int8, [8]bitmem.Bit](t, v)
		checkShiftSaturation[int16, [16]bitmem.Bit](t, v)
		checkShiftSaturation[int32, [32]bitmem.Bit](t, v)
		checkShiftSaturation[int64, [64]bitmem.Bit](t, v)
	}
	for _, v := range []int8{-1, -128, -5} {
		require.Equal(t, int8(0), bitmem.NewI8(v).Shr(8).Native())
	}
	require.Equal(t, int64(0), bitmem.NewI64(-1).Shr(64).Native())
}

func checkShiftSaturation[T nativeInt, A bitmem.Array](t *testing.T, v uint64) {
	t.Helper()
	x := bitmem.FromNative[T, A](T(v))
	w := uint(x.Len())
	for _, n := range []uint{w, w + 1, 2 * w, 1000} {
		require.True(t, x.Shl(n).IsZero().Go(), "%v << %d", x, n)
		require.True(t, x.Shr(n).IsZero().Go(), "%v >> %d", x, n)
	}
}

func TestBounds(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint8(math.MaxUint8), bitmem.MaxValue[uint8, [8]bitmem.Bit]().Native())
	assert.Equal(t, uint8(0), bitmem.MinValue[uint8, [8]bitmem.Bit]().Native())
	assert.Equal(t, int8(math.MaxInt8), bitmem.MaxValue[int8, [8]bitmem.Bit]().Native())
	assert.Equal(t, int8(math.MinInt8), bitmem.MinValue[int8, [8]bitmem.Bit]().Native())
	assert.Equal(t, int64(math.MaxInt64), bitmem.MaxValue[int64, [64]bitmem.Bit]().Native())
	assert.Equal(t, int32(math.MinInt32), bitmem.MinValue[int32, [32]bitmem.Bit]().Native())
	assert.Equal(t, uint64(math.MaxUint64), bitmem.MaxValue[uint64, [64]bitmem.Bit]().Native())
}

func TestIntegerPredicates(t *testing.T) {
	t.Parallel()
	require.Equal(t, bitmem.True, bitmem.NewI8(-1).IsNegative())
	require.Equal(t, bitmem.False, bitmem.NewU8(255).IsNegative())
	require.Equal(t, bitmem.True, bitmem.NewU32(0).IsZero())
	require.Equal(t, bitmem.True, bitmem.NewI16(-5).Less(bitmem.NewI16(3)))
	// unsigned comparison uses magnitude, not the raw pattern read as signed
	require.Equal(t, bitmem.False, bitmem.NewU8(200).Less(bitmem.NewU8(3)))
	require.Equal(t, bitmem.True, bitmem.NewU8(7).Is(bitmem.NewU8(7)))
	require.True(t, bitmem.NewI8(0).Signed())
	require.False(t, bitmem.NewU8(0).Signed())
}

func TestIntegerString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "255", bitmem.NewU8(255).String())
	require.Equal(t, "-1", bitmem.NewI8(-1).String())
	require.Equal(t, "11111111", bitmem.NewI8(-1).Binary())
	require.Equal(t, "18446744073709551615", bitmem.NewU64(uint64(math.MaxUint64)).String())
	require.Equal(t, "-9223372036854775808", bitmem.NewI64(math.MinInt64).String())
}

func TestFromArray(t *testing.T) {
	t.Parallel()
	bits := bitmem.FromBits[[8]bitmem.Bit](bitmem.Zero, bitmem.One, bitmem.Zero, bitmem.One, bitmem.Zero, bitmem.Zero, bitmem.One, bitmem.One)
	require.Equal(t, uint8(0b1100_1010), bitmem.FromArray[uint8](bits).Native())
	require.Equal(t, int8(-54), bitmem.FromArray[int8](bits).Native())
	require.Equal(t, bits, bitmem.NewU8(0b1100_1010).Bits())
}
