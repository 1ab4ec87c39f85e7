// Package lvmat is a dense 2-D matrix toolkit built on interchangeable
// storage layouts.
//
// What is inside?
//
//	A small library plus a command-line front end:
//		• matrix/: the Matrix facade, the Storage contract and three layouts
//		  (nested rows, flat row-major, optimized flat with linear kernels)
//		• cmd/matrixctl: batch CLI with eval, combine and layouts
//		• internal/config, internal/logging: YAML configuration and slog setup
//		• examples/: runnable scenarios
//
// Guarantees:
//
//   - Every operation is written once over the Storage contract; layout
//     fast paths reproduce the generic result bit for bit.
//   - Errors are sentinels matched with errors.Is.
//   - Operations return new matrices; only Set, Fill and the *InPlace methods
//     mutate their receiver.
//
// Quick start:
//
//	m, _ := matrix.New([][]float64{{3, 7}, {1, -4}}, matrix.WithLayout(matrix.LayoutOptimized))
//	d, _ := m.Determinant() // -19
//
// See matrix/doc.go for the full operation catalogue.
package lvmat
