package bitcmd

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"myceliumweb.org/bitnum/bitmem"
)

// Verify checks the bit-serial integer arithmetic against native wrapping arithmetic
// for every integer width, on n pseudo random operand pairs derived from seed.
// Each width is checked concurrently.
func Verify(ctx context.Context, seed uint64, n int) error {
	samples := sampleWords(seed, n)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return verifyInt[uint8, [8]bitmem.Bit](ctx, "u8", samples) })
	eg.Go(func() error { return verifyInt[uint16, [16]bitmem.Bit](ctx, "u16", samples) })
	eg.Go(func() error { return verifyInt[uint32, [32]bitmem.Bit](ctx, "u32", samples) })
	eg.Go(func() error { return verifyInt[uint64, [64]bitmem.Bit](ctx, "u64", samples) })
	eg.Go(func() error { return verifyInt[int8, [8]bitmem.Bit](ctx, "i8", samples) })
	eg.Go(func() error { return verifyInt[int16, [16]bitmem.Bit](ctx, "i16", samples) })
	eg.Go(func() error { return verifyInt[int32, [32]bitmem.Bit](ctx, "i32", samples) })
	eg.Go(func() error { return verifyInt[int64, [64]bitmem.Bit](ctx, "i64", samples) })
	return eg.Wait()
}

// ErrMismatch is returned by Verify when a bit-serial result differs from the native one.
type ErrMismatch struct {
	Type string
	Op   string
	X, Y string
	Got  string
	Want string
}

func (e ErrMismatch) Error() string {
	return fmt.Sprintf("%s %s %s %s: got %s want %s", e.Type, e.Op, e.X, e.Y, e.Got, e.Want)
}

func verifyInt[T constraints.Integer, A bitmem.Array](ctx context.Context, name string, samples []uint64) error {
	check := func(op string, a, b, got bitmem.Integer[T, A], want T) error {
		if got.Native() != want {
			return ErrMismatch{
				Type: name, Op: op,
				X: a.String(), Y: b.String(),
				Got: got.String(), Want: bitmem.FromNative[T, A](want).String(),
			}
		}
		return nil
	}
	for i := 0; i+1 < len(samples); i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		x, y := T(samples[i]), T(samples[i+1])
		a, b := bitmem.FromNative[T, A](x), bitmem.FromNative[T, A](y)
		if a.Native() != x {
			return ErrMismatch{Type: name, Op: "roundtrip", X: a.String(), Got: a.String(), Want: fmt.Sprint(x)}
		}
		if err := check("add", a, b, a.Add(b), x+y); err != nil {
			return err
		}
		if err := check("sub", a, b, a.Sub(b), x-y); err != nil {
			return err
		}
		if err := check("neg", a, b, a.Neg(), 0-x); err != nil {
			return err
		}
	}
	logctx.Debug(ctx, "verified", zap.String("type", name), zap.Int("pairs", max(len(samples)-1, 0)))
	return nil
}

// sampleWords returns n pseudo random words followed by the values at the edges of every width.
func sampleWords(seed uint64, n int) []uint64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	ret := make([]uint64, 0, n+10)
	for range n {
		ret = append(ret, rng.Uint64())
	}
	return append(ret,
		0, 1, ^uint64(0), 0,
		1<<7, 1<<7-1, 1<<15, 1<<31, 1<<63,
		^uint64(0),
	)
}
