// SPDX-License-Identifier: MIT

// Package matrix - iteration.
//
// Two styles over the same row-major walk:
//   - explicit cursors (Indexes/Values/Entries) with Next() bool, each call
//     returning a fresh cursor so iteration is restartable;
//   - range-over-func sequences (All/IndexSeq/ValueSeq) for `for range` loops.
//
// Cursors read live storage: values written ahead of the cursor are observed,
// and the shape is fixed for the lifetime of the matrix anyway.
package matrix

import "iter"

// cursor is the shared row-major walk.
type cursor struct {
	m   *Matrix
	pos int // next linear position to visit
	at  Index
}

// Next advances to the following element; false once the walk is exhausted.
func (c *cursor) Next() bool {
	cols := c.m.Cols()
	if cols == 0 || c.pos >= c.m.Len() {
		return false
	}
	c.at = Index{Row: c.pos / cols, Col: c.pos % cols}
	c.pos++

	return true
}

// IndexCursor yields logical positions in row-major order.
type IndexCursor struct{ cursor }

// Index returns the current position. Valid after Next returned true.
func (c *IndexCursor) Index() Index { return c.at }

// ValueCursor yields element values in row-major order.
type ValueCursor struct{ cursor }

// Value returns the current element. Valid after Next returned true.
func (c *ValueCursor) Value() float64 { return c.m.store.get(c.at.Row, c.at.Col) }

// EntryCursor yields (position, value) pairs in row-major order.
type EntryCursor struct{ cursor }

// Index returns the current position.
func (c *EntryCursor) Index() Index { return c.at }

// Value returns the current element.
func (c *EntryCursor) Value() float64 { return c.m.store.get(c.at.Row, c.at.Col) }

// Indexes returns a fresh cursor over (0,0), (0,1), ..., (rows-1, cols-1).
func (m *Matrix) Indexes() *IndexCursor { return &IndexCursor{cursor{m: m}} }

// Values returns a fresh cursor over element values.
func (m *Matrix) Values() *ValueCursor { return &ValueCursor{cursor{m: m}} }

// Entries returns a fresh cursor over (position, value) pairs.
func (m *Matrix) Entries() *EntryCursor { return &EntryCursor{cursor{m: m}} }

// All yields (position, value) pairs in row-major order.
func (m *Matrix) All() iter.Seq2[Index, float64] {
	return func(yield func(Index, float64) bool) {
		rows, cols := m.Shape()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if !yield(Index{Row: i, Col: j}, m.store.get(i, j)) {
					return
				}
			}
		}
	}
}

// IndexSeq yields positions in row-major order.
func (m *Matrix) IndexSeq() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		for at := range m.All() {
			if !yield(at) {
				return
			}
		}
	}
}

// ValueSeq yields values in row-major order.
func (m *Matrix) ValueSeq() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
