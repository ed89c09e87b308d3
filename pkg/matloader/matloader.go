// Package matloader reads the binary sparse matrix container used to
// feed a CSC view into the benchmark engine.
//
// The format (".ccbm", compressed-column benchmark matrix) is a flat
// little-endian binary layout:
//
//	offset 0:  8 bytes  magic   "CCBM\x01\x00\x00\x00"
//	offset 8:  8 bytes  nrows   uint64
//	offset 16: 8 bytes  ncols   uint64
//	offset 24: 8 bytes  nnz     uint64
//	offset 32: (ncols+1)*8 bytes  col_ptr  []uint64, 1-based
//	then:      nnz*8 bytes       row_idx  []uint64, 1-based
//
// Indices are stored 1-based (the common convention for sparse matrix
// interchange formats) and rebased to 0-based on load.
package matloader

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/conncomp-bench/pkg/csc"
	"github.com/conncomp-bench/pkg/errors"
)

var magic = [8]byte{'C', 'C', 'B', 'M', 0x01, 0x00, 0x00, 0x00}

// Loader reads a CSC view from a named matrix container.
type Loader interface {
	Load(path string) (*csc.View, error)
}

// FileLoader reads ".ccbm" containers from the local filesystem. It
// accumulates non-fatal warnings across loads (currently: row indices
// referencing a vertex past NRows, which the union-find engine skips
// rather than rejects) so a driver can surface them without threading a
// []error through the call chain by hand.
type FileLoader struct {
	warnings []error
}

// NewFileLoader creates a FileLoader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load opens path and decodes it into a csc.View.
func (l *FileLoader) Load(path string) (*csc.View, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.CodeLoadError, "failed to open matrix file", err)
	}
	defer f.Close()

	view, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.CodeLoadError, fmt.Sprintf("failed to decode matrix file %s", path), err)
	}

	l.warnings = append(l.warnings, outOfRangeWarnings(view)...)
	return view, nil
}

// Warnings returns the non-fatal warnings accumulated across every Load
// call on this loader, combined with multierr.Combine, or nil if none
// were raised.
func (l *FileLoader) Warnings() error {
	return multierr.Combine(l.warnings...)
}

func outOfRangeWarnings(view *csc.View) []error {
	var warnings []error
	for c := uint64(0); c < view.NCols; c++ {
		for _, r := range view.Column(c) {
			if r >= view.NRows {
				warnings = append(warnings, fmt.Errorf("column %d: row index %d out of range for %d rows, will be skipped", c, r, view.NRows))
			}
		}
	}
	return warnings
}

// Decode reads a ".ccbm" container from r and returns its CSC view.
func Decode(r io.Reader) (*csc.View, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", err)
	}
	if header != magic {
		return nil, fmt.Errorf("unrecognized magic bytes %x", header)
	}

	nrows, err := readUint64(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read nrows: %w", err)
	}
	ncols, err := readUint64(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read ncols: %w", err)
	}
	nnz, err := readUint64(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read nnz: %w", err)
	}

	colPtr := make([]uint64, ncols+1)
	for i := range colPtr {
		v, err := readUint64(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read col_ptr[%d]: %w", i, err)
		}
		if v == 0 {
			return nil, fmt.Errorf("col_ptr[%d] is 0, expected 1-based index", i)
		}
		colPtr[i] = v - 1
	}

	rowIdx := make([]uint64, nnz)
	for i := range rowIdx {
		v, err := readUint64(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read row_idx[%d]: %w", i, err)
		}
		if v == 0 {
			return nil, fmt.Errorf("row_idx[%d] is 0, expected 1-based index", i)
		}
		rowIdx[i] = v - 1
	}

	return csc.New(nrows, ncols, nnz, colPtr, rowIdx)
}

// Encode writes view to w in the ".ccbm" container format. Used by tests
// and by tooling that converts other matrix formats into this one.
func Encode(w io.Writer, view *csc.View) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	for _, v := range []uint64{view.NRows, view.NCols, view.NNZ} {
		if err := writeUint64(w, v); err != nil {
			return err
		}
	}
	for _, v := range view.ColPtr {
		if err := writeUint64(w, v+1); err != nil {
			return err
		}
	}
	for _, v := range view.RowIdx {
		if err := writeUint64(w, v+1); err != nil {
			return err
		}
	}
	return nil
}

func readUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func writeUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}
