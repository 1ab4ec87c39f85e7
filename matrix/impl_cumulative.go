// SPDX-License-Identifier: MIT

// Package matrix - running sums and products.
//
// Each cell of the result holds the running total up to and including that
// cell: in row-major order for the whole-matrix forms, left to right within a
// row for *PerRow, top to bottom within a column for *PerCol. Results keep the
// receiver's shape and layout.
package matrix

type scanOrder uint8

const (
	scanRowMajor scanOrder = iota
	scanPerRow
	scanPerCol
)

// CumulativeSum returns running sums in row-major order.
func (m *Matrix) CumulativeSum() *Matrix { return m.scan(scanRowMajor, 0, addFold) }

// CumulativeSumPerRow restarts the running sum at the start of every row.
func (m *Matrix) CumulativeSumPerRow() *Matrix { return m.scan(scanPerRow, 0, addFold) }

// CumulativeSumPerCol restarts the running sum at the top of every column.
func (m *Matrix) CumulativeSumPerCol() *Matrix { return m.scan(scanPerCol, 0, addFold) }

// CumulativeProd returns running products in row-major order.
func (m *Matrix) CumulativeProd() *Matrix { return m.scan(scanRowMajor, 1, mulFold) }

// CumulativeProdPerRow restarts the running product at the start of every row.
func (m *Matrix) CumulativeProdPerRow() *Matrix { return m.scan(scanPerRow, 1, mulFold) }

// CumulativeProdPerCol restarts the running product at the top of every column.
func (m *Matrix) CumulativeProdPerCol() *Matrix { return m.scan(scanPerCol, 1, mulFold) }

// scan is the shared prefix-fold kernel. Every result cell is written once.
func (m *Matrix) scan(order scanOrder, init float64, f foldFunc) *Matrix {
	rows, cols := m.Shape()
	res := m.derive(rows, cols)
	var i, j int

	switch order {
	case scanPerCol:
		for j = 0; j < cols; j++ {
			acc := init
			for i = 0; i < rows; i++ {
				acc = f(acc, m.store.get(i, j))
				res.store.put(i, j, acc)
			}
		}
	default:
		acc := init
		for i = 0; i < rows; i++ {
			if order == scanPerRow {
				acc = init
			}
			for j = 0; j < cols; j++ {
				acc = f(acc, m.store.get(i, j))
				res.store.put(i, j, acc)
			}
		}
	}

	return res
}
