// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestFacades_DelegateToMethods(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}}, matrix.WithLayout(matrix.LayoutOptimized))
	b := mustNew(t, [][]float64{{5, 6}, {7, 8}})

	s, err := matrix.Sum(a, b)
	require.NoError(t, err)
	requireSlice(t, [][]float64{{6, 8}, {10, 12}}, s)

	d, err := matrix.Diff(a, b)
	require.NoError(t, err)
	requireSlice(t, [][]float64{{-4, -4}, {-4, -4}}, d)

	p, err := matrix.Product(a, b)
	require.NoError(t, err)
	requireSlice(t, [][]float64{{19, 22}, {43, 50}}, p)

	h, err := matrix.HadamardProd(a, b)
	require.NoError(t, err)
	requireSlice(t, [][]float64{{5, 12}, {21, 32}}, h)

	tr, err := matrix.T(a)
	require.NoError(t, err)
	requireSlice(t, [][]float64{{1, 3}, {2, 4}}, tr)

	sc, err := matrix.ScaleBy(a, -1)
	require.NoError(t, err)
	requireSlice(t, [][]float64{{-1, -2}, {-3, -4}}, sc)

	det, err := matrix.Det(a)
	require.NoError(t, err)
	require.Equal(t, -2.0, det)

	rs, err := matrix.RowSums(a)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, rs)
	cs, err := matrix.ColSums(a)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 6}, cs)

	cl, err := matrix.Clip(a, 2, 3)
	require.NoError(t, err)
	requireSlice(t, [][]float64{{2, 2}, {3, 3}}, cl)

	rp, err := matrix.ReplaceInfNaN(a, 0)
	require.NoError(t, err)
	require.True(t, rp.Equal(a))

	ok, err := matrix.AllClose(a, a.Copy(), 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFacades_LikeAndConvert(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		m := mustNew(t, [][]float64{{1, 2}, {3, 4}}, matrix.WithLayout(l), matrix.WithValidateNaNInf())

		z, err := matrix.ZerosLike(m)
		require.NoError(t, err)
		require.Equal(t, l, z.Layout())
		require.True(t, z.Options().ValidateNaNInf())
		requireSlice(t, [][]float64{{0, 0}, {0, 0}}, z)

		id, err := matrix.IdentityLike(m)
		require.NoError(t, err)
		requireSlice(t, [][]float64{{1, 0}, {0, 1}}, id)

		for _, to := range matrix.Layouts {
			c, err := matrix.Convert(m, to)
			require.NoError(t, err)
			require.Equal(t, to, c.Layout())
			require.True(t, c.Equal(m))
		}
	})

	_, err := matrix.IdentityLike(mustNew(t, grid23))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestFacades_NilOperands(t *testing.T) {
	m := mustNew(t, [][]float64{{1}})
	_, err := matrix.Sum(nil, m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Diff(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Product(nil, m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.HadamardProd(nil, m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.T(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ScaleBy(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.IdentityLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Convert(nil, matrix.LayoutFlat)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.RowSums(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ColSums(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Clip(nil, 0, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ReplaceInfNaN(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.AllClose(nil, m, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
