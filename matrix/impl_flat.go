// SPDX-License-Identifier: MIT

// Package matrix - FlatBuffer storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - FlatBuffer goes through the generic kernels (get/put per element).
//     OptimizedFlatBuffer embeds it and adds linear-pass kernels.
//   - Columns are never contiguous here; Col(j) is always a strided copy.
//
// Complexity quicksheet:
//   - NewFlatBuffer: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Fill: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row"
	ctxCol = "Col"

	backendFlat      = "FlatBuffer"
	backendNested    = "NestedRows"
	backendOptimized = "OptimizedFlatBuffer"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// FlatBuffer is a concrete row-major storage.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type FlatBuffer struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Storage      = (*FlatBuffer)(nil)
	_ raw          = (*FlatBuffer)(nil)
	_ fmt.Stringer = (*FlatBuffer)(nil)
)

// NewFlatBuffer creates an r×c zero storage using one row-major buffer.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation; zero rows/cols are legal.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFlatBuffer(rows, cols int) (*FlatBuffer, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}

	return newFlatBuffer(rows, cols), nil
}

// newFlatBuffer trusts its inputs; make() zero-fills deterministically.
func newFlatBuffer(rows, cols int) *FlatBuffer {
	return &FlatBuffer{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *FlatBuffer) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *FlatBuffer) Cols() int { return m.c }

// Layout reports LayoutFlat.
func (m *FlatBuffer) Layout() Layout { return LayoutFlat }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Behavior highlights:
//   - Returns a sentinel (ErrOutOfRange) without adding context; public
//     methods (At/Set) wrap with coordinates and method name.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *FlatBuffer) indexOf(row, col int) (int, error) {
	if err := checkIndex(m.r, m.c, row, col); err != nil {
		return 0, err
	}

	return offset(m.c, row, col), nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the wrapped sentinel.
// Complexity: O(1).
func (m *FlatBuffer) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, storageErrorf(backendFlat, ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// The bounds check runs before the write, so a failed Set leaves m unchanged.
// Complexity: O(1).
func (m *FlatBuffer) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return storageErrorf(backendFlat, ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Fill overwrites every element with v in a single linear pass.
func (m *FlatBuffer) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *FlatBuffer) Clone() Storage {
	return m.clone()
}

func (m *FlatBuffer) clone() *FlatBuffer {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &FlatBuffer{r: m.r, c: m.c, data: cp}
}

func (m *FlatBuffer) get(i, j int) float64    { return m.data[i*m.c+j] }
func (m *FlatBuffer) put(i, j int, v float64) { m.data[i*m.c+j] = v }

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *FlatBuffer) String() string {
	return formatRows(m)
}

// formatRows renders any storage as "[a, b]\n[c, d]\n".
func formatRows(s Storage) string {
	var b strings.Builder
	in := rawOf(s)
	r, c := s.Rows(), s.Cols()
	var i, j int
	for i = 0; i < r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		for j = 0; j < c; j++ {    // iterate cols
			b.WriteString(fmt.Sprintf("%g", in.get(i, j)))
			if j+1 < c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
