package bitcmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"myceliumweb.org/bitnum/internal/testutil"
)

func TestVerify(t *testing.T) {
	t.Parallel()
	ctx := testutil.Context(t)
	require.NoError(t, Verify(ctx, 1, 2000))
	require.NoError(t, Verify(ctx, 2, 0))
}

func TestVerifyCanceled(t *testing.T) {
	t.Parallel()
	ctx, cf := context.WithCancel(testutil.Context(t))
	cf()
	err := Verify(ctx, 1, 10)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestSampleWords(t *testing.T) {
	t.Parallel()
	require.Equal(t, sampleWords(7, 100), sampleWords(7, 100))
	require.NotEqual(t, sampleWords(7, 100), sampleWords(8, 100))
	require.Len(t, sampleWords(0, 0), 10)
}

func TestErrMismatch(t *testing.T) {
	t.Parallel()
	err := ErrMismatch{Type: "u8", Op: "add", X: "1", Y: "2", Got: "4", Want: "3"}
	require.Equal(t, "u8 add 1 2: got 4 want 3", err.Error())
}
