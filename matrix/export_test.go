// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for scratch allocation.
//
// Purpose:
//   - Let matrix_test poison every scratch buffer with NaN, so a producing
//     operation that forgets to write a cell leaks NaN into its result.
//
// Build Policy:
//   - _test.go suffix: compiled only into this package's test binary.
//
// Risks & Maintenance:
//   - scratchPoison is package state. Tests that toggle it must not run with
//     t.Parallel and must restore it (SetScratchPoison returns the restorer).

// SetScratchPoison switches NaN pre-fill of scratch buffers and returns a
// function that restores the previous setting.
func SetScratchPoison(on bool) (restore func()) {
	prev := scratchPoison
	scratchPoison = on

	return func() { scratchPoison = prev }
}

// MinorOfForTest exposes minorOf on any layout, for comparing the linear-pass
// kernel against the generic loop.
func MinorOfForTest(m *Matrix, row, col int) [][]float64 {
	return (&Matrix{store: minorOf(m.store, row, col), opts: m.opts}).ToSlice()
}

// MaxCells exposes the largest addressable row, column and cell count.
const MaxCells = maxCells
