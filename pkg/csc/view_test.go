package csc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesShape(t *testing.T) {
	cases := []struct {
		name    string
		nrows   uint64
		ncols   uint64
		nnz     uint64
		colPtr  []uint64
		rowIdx  []uint64
		wantErr bool
	}{
		{
			name:   "triangle",
			nrows:  3, ncols: 3, nnz: 6,
			colPtr: []uint64{0, 2, 4, 6},
			rowIdx: []uint64{1, 2, 0, 2, 0, 1},
		},
		{
			name:   "empty graph",
			nrows:  5, ncols: 5, nnz: 0,
			colPtr: []uint64{0, 0, 0, 0, 0, 0},
			rowIdx: []uint64{},
		},
		{
			name:    "bad col_ptr length",
			nrows:   3, ncols: 3, nnz: 6,
			colPtr:  []uint64{0, 2, 4},
			rowIdx:  []uint64{1, 2, 0, 2, 0, 1},
			wantErr: true,
		},
		{
			name:    "non-zero col_ptr[0]",
			nrows:   2, ncols: 2, nnz: 2,
			colPtr:  []uint64{1, 1, 2},
			rowIdx:  []uint64{1, 0},
			wantErr: true,
		},
		{
			name:    "col_ptr not monotone",
			nrows:   2, ncols: 2, nnz: 2,
			colPtr:  []uint64{0, 2, 1},
			rowIdx:  []uint64{1, 0},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := New(tc.nrows, tc.ncols, tc.nnz, tc.colPtr, tc.rowIdx)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.nrows, v.NRows)
			assert.Equal(t, tc.ncols, v.NCols)
			assert.Equal(t, tc.nnz, v.NNZ)
		})
	}
}

func TestVertexCountTakesMax(t *testing.T) {
	v, err := New(3, 5, 0, make([]uint64, 6), nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), v.VertexCount())
}

func TestColumnSlices(t *testing.T) {
	v, err := New(3, 3, 6, []uint64{0, 2, 4, 6}, []uint64{1, 2, 0, 2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 2}, v.Column(1))
}

func TestEmpty(t *testing.T) {
	v, err := New(0, 0, 0, []uint64{0}, nil)
	require.NoError(t, err)
	assert.True(t, v.Empty())
}
