// Package matrix offers dense 2-D float64 matrices over interchangeable
// storage layouts.
//
// The matrix package provides:
//
//   - Three Storage backends with one contract: NestedRows ([][]float64),
//     FlatBuffer (single row-major buffer, offset = i*cols + j) and
//     OptimizedFlatBuffer (a FlatBuffer that runs bulk operations as linear
//     passes over its slice).
//   - The *Matrix facade, constructed with New/From/Identity and functional
//     options (WithLayout, WithValidateNaNInf), carrying arithmetic,
//     structural transforms, determinant, reductions, cumulative scans,
//     predicate search, masking/filtering, iteration and JSON encoding.
//
// Every operation is written once against the Storage contract, so switching
// layouts changes memory behaviour only: results are bit-identical.
//
// Errors are sentinel values (ErrOutOfRange, ErrDimensionMismatch,
// ErrNonSquare, ErrInvalidMaskType, ...) wrapped with the operation name;
// match them with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
