// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by every test file.
//   • Run each scenario once per layout, so backend equivalence is tested by
//     default rather than by a dedicated suite only.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS a Storage to hide its concrete type from type assertions.
// Matrices built over hide{...} take the checked At/Set adapter path instead of
// the built-in backends' unchecked accessors or linear fast-paths.
type hide struct{ matrix.Storage }

// forEachLayout runs fn as a subtest per built-in layout.
func forEachLayout(t *testing.T, fn func(t *testing.T, l matrix.Layout)) {
	t.Helper()
	for _, l := range matrix.Layouts {
		t.Run(l.String(), func(t *testing.T) { fn(t, l) })
	}
}

// mustNew builds a matrix or fails the test.
func mustNew(t testing.TB, data [][]float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(data, opts...)
	require.NoError(t, err)

	return m
}

// mustLayout builds a matrix in layout l.
func mustLayout(t testing.TB, l matrix.Layout, data [][]float64) *matrix.Matrix {
	t.Helper()

	return mustNew(t, data, matrix.WithLayout(l))
}

// mustHidden builds a matrix over a storage the package cannot recognise.
func mustHidden(t testing.TB, data [][]float64) *matrix.Matrix {
	t.Helper()
	fb, err := matrix.NewFlatBuffer(len(data), len(data[0]))
	require.NoError(t, err)
	for i, row := range data {
		for j, v := range row {
			require.NoError(t, fb.Set(i, j, v))
		}
	}
	m, err := matrix.Wrap(hide{fb})
	require.NoError(t, err)

	return m
}

// randData returns a deterministic r×c nested slice in [-5, 5).
func randData(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = rng.Float64()*10 - 5
		}
	}

	return out
}

// requireSlice asserts the nested contents of m.
func requireSlice(t testing.TB, want [][]float64, m *matrix.Matrix) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, want, m.ToSlice())
}
