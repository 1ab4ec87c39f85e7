// SPDX-License-Identifier: MIT

// Package matrix - indexing policy.
//
// Purpose:
//   - One place that decides whether a logical (row, col) is addressable.
//   - One formula for row-major placement in flat buffers: offset = i*cols + j.
//
// Every backend and every layout conversion goes through these two helpers so
// that logical positions never drift between representations.

package matrix

import (
	"fmt"
	"math"
)

// Index is a logical (row, col) position inside a matrix.
type Index struct {
	Row int
	Col int
}

// String renders the index as "(row,col)".
func (ix Index) String() string {
	return fmt.Sprintf("(%d,%d)", ix.Row, ix.Col)
}

// checkIndex validates 0 ≤ i < rows and 0 ≤ j < cols.
// Returns the bare ErrOutOfRange sentinel; callers wrap with method context.
// Complexity: O(1).
func checkIndex(rows, cols, i, j int) error {
	if i < 0 || i >= rows {
		return ErrOutOfRange
	}
	if j < 0 || j >= cols {
		return ErrOutOfRange
	}

	return nil
}

// checkRow validates 0 ≤ i < rows only (row access on N×0 matrices is legal).
func checkRow(rows, i int) error {
	if i < 0 || i >= rows {
		return ErrOutOfRange
	}

	return nil
}

// offset is the row-major placement formula shared by all flat layouts.
// The caller must have validated (i, j) first.
func offset(cols, i, j int) int {
	return i*cols + j
}

// maxCells bounds rows, cols and rows*cols so that the backing arrays of
// every layout stay within what the runtime can allocate.
const maxCells = min(math.MaxInt/32, 1<<42)

// fitsDims reports whether a non-negative rows×cols shape is addressable.
func fitsDims(rows, cols int) bool {
	if rows > maxCells || cols > maxCells {
		return false
	}

	return cols == 0 || rows <= maxCells/cols
}

// fitsGrown reports whether (base+extra)×other is addressable.
// base and other come from an existing shape; extra is non-negative.
func fitsGrown(base, extra, other int) bool {
	return extra <= maxCells-base && fitsDims(base+extra, other)
}

// checkDims rejects negative shapes and shapes whose cell count overflows.
// Zero rows or zero cols are legal.
func checkDims(rows, cols int) error {
	if rows < 0 || cols < 0 || !fitsDims(rows, cols) {
		return ErrInvalidDimensions
	}

	return nil
}
