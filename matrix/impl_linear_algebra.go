// SPDX-License-Identifier: MIT
// Package matrix - determinant, diagonal and trace.
//
// Purpose:
//   - Determinant by cofactor expansion along row 0, written once against the
//     unchecked accessors so every layout runs the same floating-point program.
//   - Minor extraction dispatches to the linear-pass kernel for
//     OptimizedFlatBuffer (see minorOf); arithmetic does not.
//
// Notes:
//   - Cofactor expansion is O(n!) and meant for the small matrices this package
//     targets. There is no LU fallback.
//   - Explicit float64 conversions around products forbid fused multiply-add so
//     results are bit-identical across layouts and architectures.

package matrix

const (
	opDeterminant = "Determinant"
	opTrace       = "Trace"
)

// Determinant returns det(m).
// Implementation:
//   - Stage 1: Validate square shape.
//   - Stage 2: Base cases 0×0 → 1, 1×1 → a, 2×2 → ad - bc.
//   - Stage 3: det = Σ_j (-1)^j * m[0][j] * det(minor(0, j)).
//
// Errors: ErrNonSquare.
// Complexity: O(n!) time, O(n^2) memory per recursion level.
func (m *Matrix) Determinant() (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return cofactorDet(m.store), nil
}

// cofactorDet expands along row 0. The input is square.
func cofactorDet(s raw) float64 {
	n := s.Rows()
	switch n {
	case 0:
		return 1
	case 1:
		return s.get(0, 0)
	case 2:
		return float64(s.get(0, 0)*s.get(1, 1)) - float64(s.get(0, 1)*s.get(1, 0))
	}

	var (
		det  float64
		sign = 1.0
	)
	for j := 0; j < n; j++ {
		det += float64(sign * s.get(0, j) * cofactorDet(minorOf(s, 0, j)))
		sign = -sign
	}

	return det
}

// Diagonal returns the main diagonal m[k][k] for k < min(rows, cols).
func (m *Matrix) Diagonal() []float64 {
	n := min(m.Rows(), m.Cols())
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		out[k] = m.store.get(k, k)
	}

	return out
}

// Trace returns Σ m[k][k] of a square matrix (0 for 0×0).
// Errors: ErrNonSquare.
func (m *Matrix) Trace() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum float64
	for _, v := range m.Diagonal() {
		sum += v
	}

	return sum, nil
}
