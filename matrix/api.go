// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical method.
//   - Nil-check operands, so facades never panic where a method call on a nil
//     receiver would.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Results inherit the layout and options of the first operand.
//
// AI-Hints:
//   - Use ZerosLike/IdentityLike to build neutral elements in an operand's layout.
//   - Convert is ToLayout spelled as a function, handy when mapping over layouts.

package matrix

const (
	opT            = "T"
	opScaleBy      = "ScaleBy"
	opZerosLike    = "ZerosLike"
	opIdentityLike = "IdentityLike"
	opConvert      = "Convert"
	opRowSums      = "RowSums"
	opColSums      = "ColSums"
)

// likeOptions rebuilds m's effective options as setters.
func likeOptions(m *Matrix) []Option {
	opts := []Option{WithLayout(m.Layout())}
	if m.opts.validateNaNInf {
		opts = append(opts, WithValidateNaNInf())
	}

	return opts
}

// ---------- Constructors & Utilities ----------

// ZerosLike returns a zero matrix with m's shape, layout and options.
// Complexity: O(rc) zeroing.
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZerosLike, err)
	}

	return From(m.Rows(), m.Cols(), likeOptions(m)...)
}

// IdentityLike returns I_n for a square m, in m's layout.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return Identity(m.Rows(), likeOptions(m)...)
}

// Convert returns a copy of m backed by layout.
// Errors: ErrNilMatrix.
func Convert(m *Matrix, layout Layout) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConvert, err)
	}

	return m.ToLayout(layout), nil
}

// ---------- Arithmetic (facades map 1:1 to methods; O(rc) unless noted) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
func Sum(a, b *Matrix) (*Matrix, error) { return addSub(a, b, false, opAdd) }

// Diff is an alias for Subtract: element-wise a − b.
// Complexity: O(rc).
func Diff(a, b *Matrix) (*Matrix, error) { return addSub(a, b, true, opSubtract) }

// Product is an alias for Multiply: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return a.Multiply(b)
}

// HadamardProd is an alias for Hadamard: element-wise product a ⊙ b.
func HadamardProd(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return a.Hadamard(b)
}

// T is an alias for Transpose: returns mᵀ.
//
// AI-Hints: Good for small helpers and chaining.
func T(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opT, err)
	}

	return m.Transpose(), nil
}

// ScaleBy is an alias for MultiplyWithScalar: α*m.
func ScaleBy(m *Matrix, alpha float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleBy, err)
	}

	return m.MultiplyWithScalar(alpha), nil
}

// Det is an alias for Determinant.
// Complexity: O(n!) (cofactor expansion).
func Det(m *Matrix) (float64, error) { return m.Determinant() }

// ---------- Reductions & Sanitizers ----------

// RowSums returns Σ_j m[i][j] for every row.
func RowSums(m *Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	return m.SumPerRow(), nil
}

// ColSums returns Σ_i m[i][j] for every column.
func ColSums(m *Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	return m.SumPerCol(), nil
}

// Clip clamps every entry of m into [lo, hi].
func Clip(m *Matrix, lo, hi float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opClip, err)
	}

	return m.Clip(lo, hi)
}

// ReplaceInfNaN replaces every non-finite entry of m with val.
func ReplaceInfNaN(m *Matrix, val float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReplaceInfNaN, err)
	}

	return m.ReplaceInfNaN(val)
}

// AllClose reports |a-b| ≤ atol + rtol*|b| element-wise.
func AllClose(a, b *Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return a.AllClose(b, rtol, atol)
}
