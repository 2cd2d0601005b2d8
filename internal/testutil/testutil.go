package testutil

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

func Context(t testing.TB) context.Context {
	ctx := context.Background()
	ctx, cf := context.WithCancel(ctx)
	t.Cleanup(cf)
	l, err := zap.NewDevelopment()
	require.NoError(t, err)
	ctx = logctx.NewContext(ctx, l)
	return ctx
}

// Uint64s returns n pseudo random words, followed by the edge cases every width cares about.
// The sequence is the same on every run.
func Uint64s(t testing.TB, n int) []uint64 {
	t.Helper()
	rng := rand.New(rand.NewPCG(uint64(n), 0x9e3779b97f4a7c15))
	ret := make([]uint64, 0, n+8)
	for range n {
		ret = append(ret, rng.Uint64())
	}
	ret = append(ret,
		0, 1, 2,
		1<<7, 1<<15, 1<<31, 1<<63,
		^uint64(0),
	)
	return ret
}
