// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil || m.store == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSameShape(a, b *Matrix) error {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks Rows == Cols.
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// validateSameCols guards vertical stacking (MergeCols).
func validateSameCols(a, b *Matrix) error {
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("validateSameCols", ErrDimensionMismatch)
	}

	return nil
}

// validateSameRows guards horizontal concatenation (MergeRows).
func validateSameRows(a, b *Matrix) error {
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("validateSameRows", ErrDimensionMismatch)
	}

	return nil
}

// validateNestedShape checks a nested mask/operand against rows×cols.
func validateNestedShape[T any](data [][]T, rows, cols int) error {
	if len(data) != rows {
		return validatorErrorf("validateNestedShape: Rows", ErrDimensionMismatch)
	}
	for _, row := range data {
		if len(row) != cols {
			return validatorErrorf("validateNestedShape: Columns", ErrDimensionMismatch)
		}
	}

	return nil
}
