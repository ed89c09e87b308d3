package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conncomp-bench/pkg/csc"
	"github.com/conncomp-bench/pkg/substrate"
)

// scenario mirrors a concrete end-to-end connected-components example.
type scenario struct {
	name  string
	nrows uint64
	ncols uint64
	nnz   uint64
	cp    []uint64
	ri    []uint64
	want  int
}

func scenarios() []scenario {
	return []scenario{
		{
			name: "empty graph", nrows: 5, ncols: 5, nnz: 0,
			cp: []uint64{0, 0, 0, 0, 0, 0}, ri: []uint64{},
			want: 5,
		},
		{
			name: "single triangle", nrows: 3, ncols: 3, nnz: 6,
			cp: []uint64{0, 2, 4, 6}, ri: []uint64{1, 2, 0, 2, 0, 1},
			want: 1,
		},
		{
			name: "two disjoint edges", nrows: 4, ncols: 4, nnz: 4,
			cp: []uint64{0, 1, 2, 3, 4}, ri: []uint64{1, 0, 3, 2},
			want: 2,
		},
		{
			name: "path of six", nrows: 6, ncols: 6, nnz: 10,
			cp: []uint64{0, 1, 3, 5, 7, 9, 10},
			ri: []uint64{1, 0, 2, 1, 3, 2, 4, 3, 5, 4},
			want: 1,
		},
		{
			name: "star on five leaves", nrows: 6, ncols: 6, nnz: 10,
			cp: []uint64{0, 5, 6, 7, 8, 9, 10},
			ri: []uint64{1, 2, 3, 4, 5, 0, 0, 0, 0, 0},
			want: 1,
		},
		{
			name: "three pairs two singletons", nrows: 8, ncols: 8, nnz: 6,
			cp: []uint64{0, 1, 2, 3, 4, 5, 6, 6, 6},
			ri: []uint64{1, 0, 3, 2, 5, 4},
			want: 5,
		},
	}
}

func allKinds() []substrate.Kind {
	return []substrate.Kind{substrate.Sequential, substrate.ThreadPool, substrate.WorkStealing, substrate.ForkJoin}
}

func TestCountByPropagationScenarios(t *testing.T) {
	for _, sc := range scenarios() {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			view, err := csc.New(sc.nrows, sc.ncols, sc.nnz, sc.cp, sc.ri)
			require.NoError(t, err)

			for _, kind := range allKinds() {
				cfg := substrate.Config{Threads: 4}
				got := CountByPropagation(context.Background(), view, kind, cfg)
				assert.Equalf(t, sc.want, got, "kind=%v", kind)
			}
		})
	}
}

func TestCountByUnionFindScenarios(t *testing.T) {
	for _, sc := range scenarios() {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			view, err := csc.New(sc.nrows, sc.ncols, sc.nnz, sc.cp, sc.ri)
			require.NoError(t, err)

			for _, kind := range allKinds() {
				cfg := substrate.Config{Threads: 4}
				got := CountByUnionFind(context.Background(), view, kind, cfg)
				assert.Equalf(t, sc.want, got, "kind=%v", kind)
			}
		})
	}
}

func TestCrossVariantAgreement(t *testing.T) {
	for _, sc := range scenarios() {
		view, err := csc.New(sc.nrows, sc.ncols, sc.nnz, sc.cp, sc.ri)
		require.NoError(t, err)

		cfg := substrate.Config{Threads: 4}
		prop := CountByPropagation(context.Background(), view, substrate.ThreadPool, cfg)
		uf := CountByUnionFind(context.Background(), view, substrate.ThreadPool, cfg)
		assert.Equal(t, prop, uf, sc.name)
	}
}

func TestDeterminismAcrossRepeatedCalls(t *testing.T) {
	sc := scenarios()[1] // single triangle
	view, err := csc.New(sc.nrows, sc.ncols, sc.nnz, sc.cp, sc.ri)
	require.NoError(t, err)

	cfg := substrate.Config{Threads: 4}
	first := CountByUnionFind(context.Background(), view, substrate.WorkStealing, cfg)
	second := CountByUnionFind(context.Background(), view, substrate.WorkStealing, cfg)
	assert.Equal(t, first, second)
}

func TestZeroRowsReturnsZero(t *testing.T) {
	view, err := csc.New(0, 0, 0, []uint64{0}, nil)
	require.NoError(t, err)

	cfg := substrate.Config{Threads: 4}
	assert.Equal(t, 0, CountByPropagation(context.Background(), view, substrate.Sequential, cfg))
	assert.Equal(t, 0, CountByUnionFind(context.Background(), view, substrate.Sequential, cfg))
}

func TestOutOfRangeRowIndexIsTolerated(t *testing.T) {
	// nrows=2 but row_idx contains 5 (out of range): must be silently
	// skipped rather than panicking.
	view, err := csc.New(2, 2, 2, []uint64{0, 1, 2}, []uint64{5, 0})
	require.NoError(t, err)

	cfg := substrate.Config{Threads: 2}
	assert.NotPanics(t, func() {
		CountByUnionFind(context.Background(), view, substrate.ThreadPool, cfg)
	})
}
