// SPDX-License-Identifier: MIT

// Package matrix provides arithmetic over any Storage backend: element-wise
// addition and subtraction, matrix multiplication and scalar scaling. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches. Results are new matrices; operands are never mutated
// except through the explicitly named *InPlace entry points.
package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd                = "Add"
	opSubtract           = "Subtract"
	opMultiply           = "Multiply"
	opMultiplyWithScalar = "MultiplyWithScalar"
	opAddInPlace         = "AddInPlace"
	opSubtractInPlace    = "SubtractInPlace"
)

// Add returns a new Matrix containing the element-wise sum m + other.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate scratch result in m's layout.
// Stage 3 (Execute): linear fast-path for OptimizedFlatBuffer or generic loop.
// Complexity: O(r·c) time and memory.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	return addSub(m, other, false, opAdd)
}

// Subtract returns a new Matrix containing the element-wise difference m - other.
// Complexity: O(r·c) time and memory.
func (m *Matrix) Subtract(other *Matrix) (*Matrix, error) {
	return addSub(m, other, true, opSubtract)
}

// addSub is the shared kernel behind Add and Subtract.
func addSub(a, b *Matrix, subtract bool, opTag string) (*Matrix, error) {
	// Stage 1: Validate inputs
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Stage 2: Allocate result
	rows, cols := a.Shape()
	res := a.derive(rows, cols)

	// Stage 3: Fast-path when the receiver is optimized and both sides are flat
	if _, ok := a.store.(*OptimizedFlatBuffer); ok {
		if bd, okB := flatData(b.store); okB {
			ad, _ := flatData(a.store)
			rd, _ := flatData(res.store)
			flatAddSub(rd, ad, bd, subtract)
			return res, nil
		}
	}

	// Fallback: generic loop over unchecked accessors
	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av = a.store.get(i, j)
			bv = b.store.get(i, j)
			if subtract {
				res.store.put(i, j, av-bv)
			} else {
				res.store.put(i, j, av+bv)
			}
		}
	}

	return res, nil
}

// Multiply performs standard matrix multiplication m × other.
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Prepare): allocate result rows(m) × cols(other); ErrBadShape if too large.
// Stage 3 (Execute): triple loop; every cell accumulates k ascending from 0.
// Complexity: O(r*n*c) time and O(r*c) memory.
func (m *Matrix) Multiply(other *Matrix) (*Matrix, error) {
	// Stage 1: Validate inputs
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	// Stage 2: Allocate result
	aRows, aCols, bCols := m.Rows(), m.Cols(), other.Cols()
	if !fitsDims(aRows, bCols) {
		return nil, matrixErrorf(opMultiply, ErrBadShape)
	}
	res := m.derive(aRows, bCols)

	var (
		i, j, k int
		sum     float64
	)
	// Stage 3: Fast-path on flat slices (i-k-j order, same per-cell sum order)
	if _, ok := m.store.(*OptimizedFlatBuffer); ok {
		if bd, okB := flatData(other.store); okB {
			ad, _ := flatData(m.store)
			rd, _ := flatData(res.store)
			for idx := range rd {
				rd[idx] = 0
			}
			var av float64
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = ad[rowA+k]
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						// explicit conversion forbids FMA fusion, keeping layouts bit-identical
						rd[rowR+j] += float64(av * bd[rowB+j])
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic i-j-k triple loop
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = 0
			for k = 0; k < aCols; k++ {
				sum += float64(m.store.get(i, k) * other.store.get(k, j))
			}
			res.store.put(i, j, sum)
		}
	}

	return res, nil
}

// MultiplyWithScalar returns a new Matrix where each element is multiplied by s.
// Always succeeds.
// Complexity: O(r·c).
func (m *Matrix) MultiplyWithScalar(s float64) *Matrix {
	rows, cols := m.Shape()
	res := m.derive(rows, cols)

	if _, ok := m.store.(*OptimizedFlatBuffer); ok {
		ad, _ := flatData(m.store)
		rd, _ := flatData(res.store)
		flatScale(rd, ad, s)
		return res
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.store.put(i, j, m.store.get(i, j)*s)
		}
	}

	return res
}

// AddInPlace performs m += other, mutating only m.
// Aliasing is allowed: m.AddInPlace(m) doubles every element, because each cell
// is read exactly once before it is written.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m is untouched on error).
func (m *Matrix) AddInPlace(other *Matrix) error {
	return addSubInPlace(m, other, false, opAddInPlace)
}

// SubtractInPlace performs m -= other, mutating only m.
// m.SubtractInPlace(m) yields the zero matrix.
func (m *Matrix) SubtractInPlace(other *Matrix) error {
	return addSubInPlace(m, other, true, opSubtractInPlace)
}

func addSubInPlace(a, b *Matrix, subtract bool, opTag string) error {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return matrixErrorf(opTag, err)
	}

	if _, ok := a.store.(*OptimizedFlatBuffer); ok {
		if bd, okB := flatData(b.store); okB {
			ad, _ := flatData(a.store)
			flatAddSub(ad, ad, bd, subtract)
			return nil
		}
	}

	rows, cols := a.Shape()
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = b.store.get(i, j)
			if subtract {
				a.store.put(i, j, a.store.get(i, j)-v)
			} else {
				a.store.put(i, j, a.store.get(i, j)+v)
			}
		}
	}

	return nil
}
