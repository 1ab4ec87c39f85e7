// SPDX-License-Identifier: MIT

// Package matrix - predicate search.
//
// Forward searches scan row-major; the *Last* forms scan reverse row-major
// (last row first, right to left). No search ever fails: absence is reported
// through the boolean result. Value equality is plain ==, so NaN is never found.
package matrix

// Predicate tests one element together with its logical position.
type Predicate func(v float64, at Index) bool

// scanForward returns the first match in row-major order.
func (m *Matrix) scanForward(pred Predicate) (Index, float64, bool) {
	rows, cols := m.Shape()
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = m.store.get(i, j)
			if pred(v, Index{Row: i, Col: j}) {
				return Index{Row: i, Col: j}, v, true
			}
		}
	}

	return Index{}, 0, false
}

// scanBackward returns the first match in reverse row-major order.
func (m *Matrix) scanBackward(pred Predicate) (Index, float64, bool) {
	rows, cols := m.Shape()
	var i, j int
	var v float64
	for i = rows - 1; i >= 0; i-- {
		for j = cols - 1; j >= 0; j-- {
			v = m.store.get(i, j)
			if pred(v, Index{Row: i, Col: j}) {
				return Index{Row: i, Col: j}, v, true
			}
		}
	}

	return Index{}, 0, false
}

func equalTo(x float64) Predicate {
	return func(v float64, _ Index) bool { return v == x }
}

// Every reports whether pred holds for all elements (true for an empty matrix).
func (m *Matrix) Every(pred Predicate) bool {
	_, _, found := m.scanForward(func(v float64, at Index) bool { return !pred(v, at) })

	return !found
}

// Some reports whether pred holds for at least one element.
func (m *Matrix) Some(pred Predicate) bool {
	_, _, found := m.scanForward(pred)

	return found
}

// Find returns the first matching value in row-major order.
func (m *Matrix) Find(pred Predicate) (float64, bool) {
	_, v, found := m.scanForward(pred)

	return v, found
}

// FindIndex returns the position of the first match in row-major order.
func (m *Matrix) FindIndex(pred Predicate) (Index, bool) {
	at, _, found := m.scanForward(pred)

	return at, found
}

// FindLast returns the first matching value in reverse row-major order.
func (m *Matrix) FindLast(pred Predicate) (float64, bool) {
	_, v, found := m.scanBackward(pred)

	return v, found
}

// FindLastIndex returns the position of the last match in row-major order.
func (m *Matrix) FindLastIndex(pred Predicate) (Index, bool) {
	at, _, found := m.scanBackward(pred)

	return at, found
}

// Includes reports whether some element == x.
func (m *Matrix) Includes(x float64) bool {
	_, _, found := m.scanForward(equalTo(x))

	return found
}

// IndexOf returns the first position holding x.
func (m *Matrix) IndexOf(x float64) (Index, bool) {
	return m.FindIndex(equalTo(x))
}

// LastIndexOf returns the last position (row-major) holding x.
func (m *Matrix) LastIndexOf(x float64) (Index, bool) {
	return m.FindLastIndex(equalTo(x))
}

// FindMatches collects every matching value in row-major order.
// Returns an empty, non-nil slice when nothing matches.
func (m *Matrix) FindMatches(pred Predicate) []float64 {
	out := make([]float64, 0)
	m.ForEach(func(v float64, at Index) {
		if pred(v, at) {
			out = append(out, v)
		}
	})

	return out
}

// FindIndexOfMatches collects the position of every match in row-major order.
func (m *Matrix) FindIndexOfMatches(pred Predicate) []Index {
	out := make([]Index, 0)
	m.ForEach(func(v float64, at Index) {
		if pred(v, at) {
			out = append(out, at)
		}
	})

	return out
}
