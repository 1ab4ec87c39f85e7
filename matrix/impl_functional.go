// SPDX-License-Identifier: MIT

// Package matrix - functional combinators.
//
// ForEach/Map/Reduce visit elements in row-major order, ReduceRight in reverse
// row-major order. Reduce, ReduceRight and FlatMap are package functions
// because Go methods cannot introduce type parameters.
package matrix

// ForEach calls fn for every element in row-major order.
func (m *Matrix) ForEach(fn func(v float64, at Index)) {
	rows, cols := m.Shape()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			fn(m.store.get(i, j), Index{Row: i, Col: j})
		}
	}
}

// Map returns a same-shape matrix of fn(v, at). The numeric policy is not
// applied to the produced values.
func (m *Matrix) Map(fn func(v float64, at Index) float64) *Matrix {
	rows, cols := m.Shape()
	res := m.derive(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.store.put(i, j, fn(m.store.get(i, j), Index{Row: i, Col: j}))
		}
	}

	return res
}

// Reduce folds m left to right in row-major order starting from init.
func Reduce[A any](m *Matrix, init A, fn func(acc A, v float64, at Index) A) A {
	acc := init
	m.ForEach(func(v float64, at Index) {
		acc = fn(acc, v, at)
	})

	return acc
}

// ReduceRight folds m in reverse row-major order starting from init.
func ReduceRight[A any](m *Matrix, init A, fn func(acc A, v float64, at Index) A) A {
	acc := init
	rows, cols := m.Shape()
	var i, j int
	for i = rows - 1; i >= 0; i-- {
		for j = cols - 1; j >= 0; j-- {
			acc = fn(acc, m.store.get(i, j), Index{Row: i, Col: j})
		}
	}

	return acc
}

// Flat returns the elements in row-major order (freshly allocated).
func (m *Matrix) Flat() []float64 {
	out := make([]float64, m.Len())
	if data, ok := flatData(m.store); ok {
		copy(out, data)
		return out
	}
	k := 0
	m.ForEach(func(v float64, _ Index) {
		out[k] = v
		k++
	})

	return out
}

// FlatMap maps every element to zero or more values of T and concatenates the
// results in row-major order.
func FlatMap[T any](m *Matrix, fn func(v float64, at Index) []T) []T {
	out := make([]T, 0, m.Len())
	m.ForEach(func(v float64, at Index) {
		out = append(out, fn(v, at)...)
	})

	return out
}
