package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conncomp-bench/pkg/csc"
	"github.com/conncomp-bench/pkg/substrate"
)

func triangleView(t *testing.T) *csc.View {
	t.Helper()
	v, err := csc.New(3, 3, 6, []uint64{0, 2, 4, 6}, []uint64{1, 2, 0, 2, 0, 1})
	require.NoError(t, err)
	return v
}

func TestCountDispatchesByVariant(t *testing.T) {
	view := triangleView(t)

	assert.Equal(t, 1, Count(context.Background(), view, 4, Propagation, substrate.ThreadPool))
	assert.Equal(t, 1, Count(context.Background(), view, 4, UnionFind, substrate.WorkStealing))
}

func TestCountUnknownVariantReturnsSentinel(t *testing.T) {
	view := triangleView(t)
	got := Count(context.Background(), view, 4, Variant(99), substrate.Sequential)
	assert.Equal(t, AllocFailureSentinel, got)
}

func TestCountZeroRowsIsZero(t *testing.T) {
	view, err := csc.New(0, 0, 0, []uint64{0}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, Count(context.Background(), view, 8, Propagation, substrate.ThreadPool))
	assert.Equal(t, 0, Count(context.Background(), view, 8, UnionFind, substrate.ThreadPool))
}
