// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise helpers layered on the Storage contract: Hadamard product,
//     clamping, non-finite replacement and tolerance comparison (AllClose).
//   - Keep all loops deterministic with a single linear pass on flat layouts.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output matrix; O(r*c) time and space.

package matrix

import "math"

const (
	opHadamard      = "Hadamard"
	opClip          = "Clip"
	opReplaceInfNaN = "ReplaceInfNaN"
	opAllClose      = "AllClose"
)

// Hadamard returns the element-wise product m ⊙ other.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) Hadamard(other *Matrix) (*Matrix, error) {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return m.zipWith(other, func(a, b float64) float64 { return a * b }), nil
}

// Clip copies m clamping each entry into [lo, hi]. Bounds must be finite;
// if lo > hi they are swapped.
// Errors: ErrNaNInf for non-finite bounds.
func (m *Matrix) Clip(lo, hi float64) (*Matrix, error) {
	if !isFinite(lo) || !isFinite(hi) {
		return nil, matrixErrorf(opClip, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	return m.mapValues(func(v float64) float64 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}), nil
}

// ReplaceInfNaN copies m replacing any {±Inf, NaN} by val.
// Errors: ErrNaNInf when val itself is not finite.
func (m *Matrix) ReplaceInfNaN(val float64) (*Matrix, error) {
	if !isFinite(val) {
		return nil, matrixErrorf(opReplaceInfNaN, ErrNaNInf)
	}

	return m.mapValues(func(v float64) float64 {
		if !isFinite(v) {
			return val
		}
		return v
	}), nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - m and other must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//   - A NaN element never compares close.
func (m *Matrix) AllClose(other *Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if !isFinite(rtol) || !isFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	r, c := m.Shape()
	var i, j int
	var av, bv float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			av, bv = m.store.get(i, j), other.store.get(i, j)
			// negated form so NaN differences fail
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}

// mapValues applies f to every element into a same-shape result.
func (m *Matrix) mapValues(f func(float64) float64) *Matrix {
	rows, cols := m.Shape()
	res := m.derive(rows, cols)

	if src, ok := flatData(m.store); ok {
		if dst, okD := flatData(res.store); okD {
			for k, v := range src {
				dst[k] = f(v)
			}
			return res
		}
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.store.put(i, j, f(m.store.get(i, j)))
		}
	}

	return res
}

// zipWith combines two validated same-shape matrices element by element.
func (m *Matrix) zipWith(other *Matrix, f func(a, b float64) float64) *Matrix {
	rows, cols := m.Shape()
	res := m.derive(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.store.put(i, j, f(m.store.get(i, j), other.store.get(i, j)))
		}
	}

	return res
}
