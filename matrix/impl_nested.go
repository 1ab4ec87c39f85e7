// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// NestedRows stores a matrix as one []float64 per row.
// Two-level indexing, one allocation per row. cols is tracked explicitly so
// that N×0 shapes are representable.
type NestedRows struct {
	r, c int
	data [][]float64 // len(data) == r, len(data[i]) == c
}

var (
	_ Storage      = (*NestedRows)(nil)
	_ raw          = (*NestedRows)(nil)
	_ fmt.Stringer = (*NestedRows)(nil)
)

// NewNestedRows creates an r×c zero storage with one slice per row.
// Returns ErrInvalidDimensions for negative shapes.
func NewNestedRows(rows, cols int) (*NestedRows, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}

	return newNestedRows(rows, cols), nil
}

func newNestedRows(rows, cols int) *NestedRows {
	data := make([][]float64, rows)
	for i := range data {
		data[i] = make([]float64, cols)
	}

	return &NestedRows{r: rows, c: cols, data: data}
}

// Rows returns the row count.
func (m *NestedRows) Rows() int { return m.r }

// Cols returns the column count.
func (m *NestedRows) Cols() int { return m.c }

// Layout reports LayoutNested.
func (m *NestedRows) Layout() Layout { return LayoutNested }

// At returns the value at (row, col) or ErrOutOfRange.
func (m *NestedRows) At(row, col int) (float64, error) {
	if err := checkIndex(m.r, m.c, row, col); err != nil {
		return 0, storageErrorf(backendNested, ctxAt, row, col, err)
	}

	return m.data[row][col], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange without writing.
func (m *NestedRows) Set(row, col int, v float64) error {
	if err := checkIndex(m.r, m.c, row, col); err != nil {
		return storageErrorf(backendNested, ctxSet, row, col, err)
	}
	m.data[row][col] = v

	return nil
}

// Fill overwrites every element with v, row by row.
func (m *NestedRows) Fill(v float64) {
	for _, row := range m.data {
		for j := range row {
			row[j] = v
		}
	}
}

// Clone returns a deep copy; no row slice is shared with m.
func (m *NestedRows) Clone() Storage {
	cp := make([][]float64, m.r)
	for i, row := range m.data {
		cp[i] = append([]float64(nil), row...)
		if cp[i] == nil {
			cp[i] = []float64{}
		}
	}

	return &NestedRows{r: m.r, c: m.c, data: cp}
}

func (m *NestedRows) get(i, j int) float64    { return m.data[i][j] }
func (m *NestedRows) put(i, j int, v float64) { m.data[i][j] = v }

// String renders rows like FlatBuffer.String.
func (m *NestedRows) String() string { return formatRows(m) }
