// SPDX-License-Identifier: MIT

// Package matrix - structural transforms.
//
// Purpose:
//   - Pure geometric rearrangements (transpose, flips, rotations), window
//     extraction (minor, submatrix) and growth (merge, expand).
//   - Every result is a fresh matrix in the receiver's layout; operands are
//     never mutated.
//
// Contracts:
//   - MinorSubmatrix / Submatrix validate their coordinates up front and return
//     ErrOutOfRange; Submatrix with end < start-1 returns ErrBadShape and
//     end == start-1 yields an empty dimension.
//   - MergeCols stacks rows (equal cols), MergeRows concatenates columns
//     (equal rows); otherwise ErrDimensionMismatch.
//
// Complexity:
//   - All transforms are O(r*c) time and memory.

package matrix

import "fmt"

const (
	opMinorSubmatrix = "MinorSubmatrix"
	opSubmatrix      = "Submatrix"
	opMergeCols      = "MergeCols"
	opMergeRows      = "MergeRows"
	opExpandRows     = "ExpandRows"
	opExpandCols     = "ExpandCols"
)

// Transpose returns a new cols×rows matrix with res[j][i] = m[i][j].
func (m *Matrix) Transpose() *Matrix {
	rows, cols := m.Shape()
	res := m.derive(cols, rows)

	if _, ok := m.store.(*OptimizedFlatBuffer); ok {
		src, _ := flatData(m.store)
		dst, _ := flatData(res.store)
		flatTranspose(dst, src, rows, cols)
		return res
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.store.put(j, i, m.store.get(i, j))
		}
	}

	return res
}

// MinorSubmatrix removes the given row and column.
// Result shape: (rows-1)×(cols-1).
// Errors: ErrOutOfRange when row or col is not a valid index.
func (m *Matrix) MinorSubmatrix(row, col int) (*Matrix, error) {
	rows, cols := m.Shape()
	if err := checkIndex(rows, cols, row, col); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", opMinorSubmatrix, row, col, err)
	}

	return &Matrix{store: minorOf(m.store, row, col), opts: m.opts}, nil
}

// minorOf extracts the minor of a validated (row, col). Determinant reuses it.
func minorOf(src raw, row, col int) raw {
	rows, cols := src.Rows(), src.Cols()
	dst := newScratch(src.Layout(), rows-1, cols-1)

	if _, ok := src.(*OptimizedFlatBuffer); ok {
		s, _ := flatData(src)
		d, _ := flatData(dst)
		flatMinor(d, s, cols, row, col)
		return dst
	}

	var i, j, di, dj int
	for i = 0; i < rows; i++ {
		if i == row {
			continue
		}
		dj = 0
		for j = 0; j < cols; j++ {
			if j == col {
				continue
			}
			dst.put(di, dj, src.get(i, j))
			dj++
		}
		di++
	}

	return dst
}

// Submatrix returns the inclusive window [rowStart..rowEnd]×[colStart..colEnd].
// Result shape: (rowEnd-rowStart+1)×(colEnd-colStart+1).
//
// Errors:
//   - ErrBadShape when rowEnd < rowStart-1 or colEnd < colStart-1.
//   - ErrOutOfRange when a non-empty window reaches outside the matrix.
func (m *Matrix) Submatrix(rowStart, colStart, rowEnd, colEnd int) (*Matrix, error) {
	rows, cols := m.Shape()
	h, w := rowEnd-rowStart+1, colEnd-colStart+1
	if h < 0 || w < 0 {
		return nil, fmt.Errorf("%s(%d,%d,%d,%d): %w", opSubmatrix, rowStart, colStart, rowEnd, colEnd, ErrBadShape)
	}
	if !windowInside(rows, rowStart, h) || !windowInside(cols, colStart, w) {
		return nil, fmt.Errorf("%s(%d,%d,%d,%d): %w", opSubmatrix, rowStart, colStart, rowEnd, colEnd, ErrOutOfRange)
	}

	res := m.derive(h, w)
	if h == 0 || w == 0 {
		return res, nil
	}

	if _, ok := m.store.(*OptimizedFlatBuffer); ok {
		src, _ := flatData(m.store)
		dst, _ := flatData(res.store)
		flatWindow(dst, src, cols, rowStart, colStart, rowEnd, colEnd)
		return res, nil
	}

	var i, j int
	for i = 0; i < h; i++ {
		for j = 0; j < w; j++ {
			res.store.put(i, j, m.store.get(rowStart+i, colStart+j))
		}
	}

	return res, nil
}

// windowInside reports whether n cells starting at start fit in [0, size).
// An empty span only needs a start within [0, size].
func windowInside(size, start, n int) bool {
	if n == 0 {
		return start >= 0 && start <= size
	}

	return start >= 0 && start+n <= size
}

// FlipHorizontal mirrors every row: res[i][j] = m[i][cols-1-j].
func (m *Matrix) FlipHorizontal() *Matrix {
	rows, cols := m.Shape()
	res := m.derive(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.store.put(i, j, m.store.get(i, cols-1-j))
		}
	}

	return res
}

// FlipVertical reverses row order: res[i][j] = m[rows-1-i][j].
func (m *Matrix) FlipVertical() *Matrix {
	rows, cols := m.Shape()
	res := m.derive(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.store.put(i, j, m.store.get(rows-1-i, j))
		}
	}

	return res
}

// RotateClockwise turns the matrix a quarter right; shape becomes cols×rows.
// res[j][rows-1-i] = m[i][j].
func (m *Matrix) RotateClockwise() *Matrix {
	rows, cols := m.Shape()
	res := m.derive(cols, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.store.put(j, rows-1-i, m.store.get(i, j))
		}
	}

	return res
}

// RotateCounterClockwise turns the matrix a quarter left; shape becomes cols×rows.
// res[cols-1-j][i] = m[i][j].
func (m *Matrix) RotateCounterClockwise() *Matrix {
	rows, cols := m.Shape()
	res := m.derive(cols, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.store.put(cols-1-j, i, m.store.get(i, j))
		}
	}

	return res
}

// MergeCols stacks other's rows below m's rows. Both must have equal Cols.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrBadShape (result too large).
func (m *Matrix) MergeCols(other *Matrix) (*Matrix, error) {
	if err := validateSameCols(m, other); err != nil {
		return nil, matrixErrorf(opMergeCols, err)
	}
	if !fitsGrown(m.Rows(), other.Rows(), m.Cols()) {
		return nil, matrixErrorf(opMergeCols, ErrBadShape)
	}

	return stackRows(m, other.store), nil
}

// MergeRows appends other's columns to the right of m's columns.
// Both must have equal Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrBadShape (result too large).
func (m *Matrix) MergeRows(other *Matrix) (*Matrix, error) {
	if err := validateSameRows(m, other); err != nil {
		return nil, matrixErrorf(opMergeRows, err)
	}
	if !fitsGrown(m.Cols(), other.Cols(), m.Rows()) {
		return nil, matrixErrorf(opMergeRows, ErrBadShape)
	}

	return joinCols(m, other.store), nil
}

// ExpandRows appends n rows holding fill. n == 0 returns a copy.
// Errors: ErrBadShape for n < 0 or a result too large to allocate.
func (m *Matrix) ExpandRows(n int, fill float64) (*Matrix, error) {
	if n < 0 || !fitsGrown(m.Rows(), n, m.Cols()) {
		return nil, fmt.Errorf("%s(%d): %w", opExpandRows, n, ErrBadShape)
	}
	pad := newStorage(m.Layout(), n, m.Cols())
	pad.Fill(fill)

	return stackRows(m, pad), nil
}

// ExpandCols appends n columns holding fill. n == 0 returns a copy.
// Errors: ErrBadShape for n < 0 or a result too large to allocate.
func (m *Matrix) ExpandCols(n int, fill float64) (*Matrix, error) {
	if n < 0 || !fitsGrown(m.Cols(), n, m.Rows()) {
		return nil, fmt.Errorf("%s(%d): %w", opExpandCols, n, ErrBadShape)
	}
	pad := newStorage(m.Layout(), m.Rows(), n)
	pad.Fill(fill)

	return joinCols(m, pad), nil
}

// stackRows writes top then bottom into a (rt+rb)×c result. Shapes are validated.
func stackRows(top *Matrix, bottom raw) *Matrix {
	rt, c := top.Shape()
	rb := bottom.Rows()
	res := top.derive(rt+rb, c)
	var i, j int
	for i = 0; i < rt; i++ {
		for j = 0; j < c; j++ {
			res.store.put(i, j, top.store.get(i, j))
		}
	}
	for i = 0; i < rb; i++ {
		for j = 0; j < c; j++ {
			res.store.put(rt+i, j, bottom.get(i, j))
		}
	}

	return res
}

// joinCols writes left then right into an r×(cl+cr) result. Shapes are validated.
func joinCols(left *Matrix, right raw) *Matrix {
	r, cl := left.Shape()
	cr := right.Cols()
	res := left.derive(r, cl+cr)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < cl; j++ {
			res.store.put(i, j, left.store.get(i, j))
		}
		for j = 0; j < cr; j++ {
			res.store.put(i, cl+j, right.get(i, j))
		}
	}

	return res
}
