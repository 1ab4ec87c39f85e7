// SPDX-License-Identifier: MIT

// Package matrix - masking and filtering.
//
// Purpose:
//   - Mask keeps selected cells and zeroes the rest. The selector may be a
//     predicate, a same-shape *Matrix, a same-shape [][]float64 (non-zero and
//     non-NaN selects) or a same-shape [][]bool.
//   - Filter keeps selected cells and marks the rest absent. Absence is tracked
//     in a presence bitmap instead of a sentinel value, so every float64
//     (including 0 and NaN) stays representable.
//
// Errors:
//   - ErrDimensionMismatch when a matrix/nested mask has a different shape.
//   - ErrInvalidMaskType for any other selector type.

package matrix

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

const (
	opMask       = "Mask"
	opMaskMatrix = "MaskMatrix"
	opMaskNested = "MaskNested"
	opMaskBool   = "MaskBool"
	opFilteredAt = "Filtered.At"
)

// Mask dispatches on the dynamic type of mask.
// Accepted: Predicate, func(float64, Index) bool, *Matrix, [][]float64, [][]bool.
func (m *Matrix) Mask(mask any) (*Matrix, error) {
	switch t := mask.(type) {
	case Predicate:
		return m.MaskFunc(t)
	case func(float64, Index) bool:
		return m.MaskFunc(t)
	case *Matrix:
		return m.MaskMatrix(t)
	case [][]float64:
		return m.MaskNested(t)
	case [][]bool:
		return m.MaskBool(t)
	default:
		return nil, fmt.Errorf("%s(%T): %w", opMask, mask, ErrInvalidMaskType)
	}
}

// MaskFunc keeps m[i][j] where pred holds and writes 0 elsewhere.
// Errors: ErrInvalidMaskType for a nil predicate.
func (m *Matrix) MaskFunc(pred Predicate) (*Matrix, error) {
	if pred == nil {
		return nil, matrixErrorf(opMask, ErrInvalidMaskType)
	}

	return m.selectWith(pred), nil
}

// MaskMatrix keeps m[i][j] where mask[i][j] is truthy (non-zero, non-NaN).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) MaskMatrix(mask *Matrix) (*Matrix, error) {
	if err := ValidateBinarySameShape(m, mask); err != nil {
		return nil, matrixErrorf(opMaskMatrix, err)
	}

	return m.selectWith(func(_ float64, at Index) bool {
		return truthy(mask.store.get(at.Row, at.Col))
	}), nil
}

// MaskNested keeps m[i][j] where mask[i][j] is truthy (non-zero, non-NaN).
// Errors: ErrDimensionMismatch.
func (m *Matrix) MaskNested(mask [][]float64) (*Matrix, error) {
	if err := validateNestedShape(mask, m.Rows(), m.Cols()); err != nil {
		return nil, matrixErrorf(opMaskNested, err)
	}

	return m.selectWith(func(_ float64, at Index) bool {
		return truthy(mask[at.Row][at.Col])
	}), nil
}

// MaskBool keeps m[i][j] where mask[i][j] is true.
// Errors: ErrDimensionMismatch.
func (m *Matrix) MaskBool(mask [][]bool) (*Matrix, error) {
	if err := validateNestedShape(mask, m.Rows(), m.Cols()); err != nil {
		return nil, matrixErrorf(opMaskBool, err)
	}

	return m.selectWith(func(_ float64, at Index) bool {
		return mask[at.Row][at.Col]
	}), nil
}

func truthy(v float64) bool { return v != 0 && !math.IsNaN(v) }

func (m *Matrix) selectWith(keep Predicate) *Matrix {
	return m.Map(func(v float64, at Index) float64 {
		if keep(v, at) {
			return v
		}
		return 0
	})
}

// Filtered is a partial view: same shape as its source, but only the cells a
// filter selected are present.
type Filtered struct {
	rows, cols int
	values     []float64      // row-major; absent slots hold 0
	present    *bitset.BitSet // bit i*cols+j set ⇔ (i, j) present
	opts       Options
}

// Filter keeps the cells where pred holds; every other cell is absent.
// A nil predicate selects nothing.
func (m *Matrix) Filter(pred Predicate) *Filtered {
	rows, cols := m.Shape()
	f := &Filtered{
		rows:    rows,
		cols:    cols,
		values:  make([]float64, rows*cols),
		present: bitset.New(uint(rows * cols)),
		opts:    m.opts,
	}
	f.opts.layout = m.Layout()
	if pred == nil {
		return f
	}
	m.ForEach(func(v float64, at Index) {
		if pred(v, at) {
			k := offset(cols, at.Row, at.Col)
			f.values[k] = v
			f.present.Set(uint(k))
		}
	})

	return f
}

// FilterNonZero is Filter with the predicate v != 0.
func (m *Matrix) FilterNonZero() *Filtered {
	return m.Filter(func(v float64, _ Index) bool { return v != 0 })
}

// Rows returns the row count of the source.
func (f *Filtered) Rows() int { return f.rows }

// Cols returns the column count of the source.
func (f *Filtered) Cols() int { return f.cols }

// At returns the value at (i, j) and whether it is present.
// Errors: ErrOutOfRange.
func (f *Filtered) At(i, j int) (float64, bool, error) {
	if err := checkIndex(f.rows, f.cols, i, j); err != nil {
		return 0, false, storageErrorf("Filtered", ctxAt, i, j, err)
	}
	k := offset(f.cols, i, j)
	if !f.present.Test(uint(k)) {
		return 0, false, nil
	}

	return f.values[k], true, nil
}

// Present returns how many cells were selected.
func (f *Filtered) Present() int { return int(f.present.Count()) }

// Values returns the present values in row-major order.
func (f *Filtered) Values() []float64 {
	out := make([]float64, 0, f.Present())
	for k, ok := f.present.NextSet(0); ok; k, ok = f.present.NextSet(k + 1) {
		out = append(out, f.values[k])
	}

	return out
}

// Indexes returns the present positions in row-major order.
func (f *Filtered) Indexes() []Index {
	out := make([]Index, 0, f.Present())
	for k, ok := f.present.NextSet(0); ok; k, ok = f.present.NextSet(k + 1) {
		out = append(out, Index{Row: int(k) / f.cols, Col: int(k) % f.cols})
	}

	return out
}

// Fill materialises the view, writing stand-in at every absent cell.
// The result uses the source's layout and options.
func (f *Filtered) Fill(standIn float64) *Matrix {
	s := newScratch(f.opts.layout, f.rows, f.cols)
	var i, j, k int
	for i = 0; i < f.rows; i++ {
		for j = 0; j < f.cols; j++ {
			k = offset(f.cols, i, j)
			if f.present.Test(uint(k)) {
				s.put(i, j, f.values[k])
			} else {
				s.put(i, j, standIn)
			}
		}
	}

	return &Matrix{store: s, opts: f.opts}
}
