package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallel_CollectsAllResults(t *testing.T) {
	results, err := Parallel(context.Background(),
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context) (int, error) { return 2, nil },
		func(ctx context.Context) (int, error) { return 3, nil },
	)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, results)
}

func TestParallel_FirstErrorWins(t *testing.T) {
	boom := errors.New("boom")

	_, err := Parallel(context.Background(),
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context) (int, error) { return 0, boom },
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestParallel2_ReturnsBothResults(t *testing.T) {
	balance, nonce, err := Parallel2(context.Background(),
		func(ctx context.Context) (string, error) { return "1000", nil },
		func(ctx context.Context) (string, error) { return "0x44", nil },
	)

	require.NoError(t, err)
	assert.Equal(t, "1000", balance)
	assert.Equal(t, "0x44", nonce)
}

func TestParallelPartial_DoesNotCancelOnError(t *testing.T) {
	boom := errors.New("boom")

	results := ParallelPartial(context.Background(),
		func(ctx context.Context) (string, error) { return "", boom },
		func(ctx context.Context) (string, error) { return "ok", nil },
	)

	require.Len(t, results, 2)
	assert.ErrorIs(t, results[0].Err, boom)
	require.NoError(t, results[1].Err)
	assert.Equal(t, "ok", results[1].Value)
}

func TestParallelPartialLimit_BoundsConcurrency(t *testing.T) {
	const limit = 2

	var current, peak atomic.Int64

	fns := make([]func(context.Context) (struct{}, error), 10)
	for i := range fns {
		fns[i] = func(ctx context.Context) (struct{}, error) {
			n := current.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}

			current.Add(-1)

			return struct{}{}, nil
		}
	}

	results := ParallelPartialLimit(context.Background(), limit, fns...)

	require.Len(t, results, 10)
	assert.LessOrEqual(t, peak.Load(), int64(limit))
}
