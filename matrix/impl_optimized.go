// SPDX-License-Identifier: MIT

// Package matrix - OptimizedFlatBuffer: FlatBuffer + linear-pass kernels.
//
// Purpose:
//   - Same logical contract as FlatBuffer (it embeds one).
//   - Bulk operations (add, subtract, scalar multiply, transpose, minor and
//     window extraction) run as single passes over the flat slice instead of
//     per-element get/put.
//
// Determinism & Policy:
//   - An optimization only: every kernel performs the same floating-point
//     operations in the same order as the generic path, so results are
//     bit-identical across layouts.

package matrix

// OptimizedFlatBuffer is a FlatBuffer whose operations take linear fast-paths.
type OptimizedFlatBuffer struct {
	*FlatBuffer
}

var (
	_ Storage = (*OptimizedFlatBuffer)(nil)
	_ raw     = (*OptimizedFlatBuffer)(nil)
)

// NewOptimizedFlatBuffer creates an r×c zero storage.
// Returns ErrInvalidDimensions for negative shapes.
func NewOptimizedFlatBuffer(rows, cols int) (*OptimizedFlatBuffer, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}

	return newOptimizedFlatBuffer(rows, cols), nil
}

func newOptimizedFlatBuffer(rows, cols int) *OptimizedFlatBuffer {
	return &OptimizedFlatBuffer{FlatBuffer: newFlatBuffer(rows, cols)}
}

// Layout reports LayoutOptimized.
func (m *OptimizedFlatBuffer) Layout() Layout { return LayoutOptimized }

// At returns the value at (row, col) or ErrOutOfRange.
func (m *OptimizedFlatBuffer) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, storageErrorf(backendOptimized, ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange without writing.
func (m *OptimizedFlatBuffer) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return storageErrorf(backendOptimized, ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy that keeps the optimized layout.
func (m *OptimizedFlatBuffer) Clone() Storage {
	return &OptimizedFlatBuffer{FlatBuffer: m.FlatBuffer.clone()}
}

// flatData exposes the row-major slice of flat layouts.
func flatData(s Storage) ([]float64, bool) {
	switch t := s.(type) {
	case *OptimizedFlatBuffer:
		return t.data, true
	case *FlatBuffer:
		return t.data, true
	default:
		return nil, false
	}
}

// ---------- linear-pass kernels (dst is always a fresh scratch of equal length) ----------

// flatAddSub computes dst[k] = a[k] ± b[k].
func flatAddSub(dst, a, b []float64, subtract bool) {
	n := len(dst)
	if subtract {
		for k := 0; k < n; k++ {
			dst[k] = a[k] - b[k]
		}
		return
	}
	for k := 0; k < n; k++ {
		dst[k] = a[k] + b[k]
	}
}

// flatScale computes dst[k] = a[k] * s.
func flatScale(dst, a []float64, s float64) {
	for k := range dst {
		dst[k] = a[k] * s
	}
}

// flatTranspose writes the r×c source into dst as c×r: dst[j*r+i] = src[i*c+j].
func flatTranspose(dst, src []float64, r, c int) {
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			dst[j*r+i] = src[base+j]
		}
	}
}

// flatMinor copies src (r×c) into dst ((r-1)×(c-1)) skipping one row and column.
func flatMinor(dst, src []float64, c, row, col int) {
	k := 0
	for idx, v := range src {
		if idx/c == row || idx%c == col {
			continue
		}
		dst[k] = v
		k++
	}
}

// flatWindow copies the inclusive window [r0..r1]×[c0..c1] of src (row width c)
// into dst, one contiguous row segment at a time.
func flatWindow(dst, src []float64, c, r0, c0, r1, c1 int) {
	w := c1 - c0 + 1
	k := 0
	for i := r0; i <= r1; i++ {
		base := i*c + c0
		copy(dst[k:k+w], src[base:base+w])
		k += w
	}
}
