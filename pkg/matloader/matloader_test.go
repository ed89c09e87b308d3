package matloader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conncomp-bench/pkg/csc"
)

func triangleView(t *testing.T) *csc.View {
	t.Helper()
	v, err := csc.New(3, 3, 6, []uint64{0, 2, 4, 6}, []uint64{1, 2, 0, 2, 0, 1})
	require.NoError(t, err)
	return v
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	view := triangleView(t)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, view))

	decoded, err := Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, view.NRows, decoded.NRows)
	assert.Equal(t, view.NCols, decoded.NCols)
	assert.Equal(t, view.NNZ, decoded.NNZ)
	assert.Equal(t, view.ColPtr, decoded.ColPtr)
	assert.Equal(t, view.RowIdx, decoded.RowIdx)
}

func TestFileLoaderRoundTrip(t *testing.T) {
	view := triangleView(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "triangle.ccbm")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, Encode(f, view))
	require.NoError(t, f.Close())

	loaded, err := NewFileLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, view.RowIdx, loaded.RowIdx)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	_, err := Decode(bytes.NewReader(make([]byte, 64)))
	assert.Error(t, err)
}

func TestFileLoaderMissingFile(t *testing.T) {
	_, err := NewFileLoader().Load("/nonexistent/path.ccbm")
	assert.Error(t, err)
}

func TestFileLoaderWarnsOnOutOfRangeRowIndex(t *testing.T) {
	// 2x2 matrix whose single entry references row 5, past NRows.
	view, err := csc.New(2, 2, 1, []uint64{0, 1, 1}, []uint64{5})
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.ccbm")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, Encode(f, view))
	require.NoError(t, f.Close())

	loader := NewFileLoader()
	assert.Nil(t, loader.Warnings())

	_, err = loader.Load(path)
	require.NoError(t, err)
	assert.Error(t, loader.Warnings())
}
