// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with an operation tag via
// matrixErrorf (or storageErrorf for indexers); callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> numeric policy.

var (
	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Col) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Subtract different shapes, or Multiply where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidMaskType is returned by Mask when the mask is neither a predicate,
	// a *Matrix, nor a nested [][]float64 / [][]bool of the same shape.
	ErrInvalidMaskType = errors.New("matrix: mask must be a predicate, matrix or nested slice")

	// ErrRaggedRows is returned when nested input data has rows of unequal length.
	ErrRaggedRows = errors.New("matrix: rows have unequal length")

	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// negative or too large to allocate.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0 and addressable")

	// ErrBadShape is returned when a requested window or expansion is malformed
	// (e.g. Submatrix end before start, ExpandRows with n < 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrEmpty is returned by extreme-value reductions (Max/Min and friends)
	// when there is no element to select.
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrNaNInf signals a NaN or ±Inf value was written while the numeric
	// policy (WithValidateNaNInf) was enabled.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnknownLayout is returned by ParseLayout for unrecognised names.
	ErrUnknownLayout = errors.New("matrix: unknown layout")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// storageErrorf wraps an error with a uniform backend context and callsite indices,
// e.g. "FlatBuffer.At(2,0): matrix: index out of range".
func storageErrorf(backend, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", backend, method, row, col, err)
}
