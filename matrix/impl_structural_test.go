// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

var grid23 = [][]float64{{1, 2, 3}, {4, 5, 6}}

func TestTranspose(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		m := mustLayout(t, l, grid23)
		requireSlice(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, m.Transpose())
	})
}

func TestTranspose_Involution(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		for _, shape := range [][2]int{{1, 1}, {3, 7}, {6, 2}} {
			m := mustLayout(t, l, randData(shape[0], shape[1], int64(shape[0]*shape[1])))
			require.True(t, m.Transpose().Transpose().Equal(m))
		}
	})
}

func TestMinorSubmatrix(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		m := mustLayout(t, l, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
		minor, err := m.MinorSubmatrix(1, 0)
		require.NoError(t, err)
		requireSlice(t, [][]float64{{2, 3}, {8, 9}}, minor)

		_, err = m.MinorSubmatrix(3, 0)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		_, err = m.MinorSubmatrix(0, -1)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	})
}

func TestMinor_LinearKernelMatchesGeneric(t *testing.T) {
	data := randData(5, 4, 77)
	want := matrix.MinorOfForTest(mustLayout(t, matrix.LayoutNested, data), 2, 3)
	got := matrix.MinorOfForTest(mustLayout(t, matrix.LayoutOptimized, data), 2, 3)
	require.Equal(t, want, got)
}

func TestSubmatrix(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		m := mustLayout(t, l, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

		s, err := m.Submatrix(0, 1, 1, 2)
		require.NoError(t, err)
		requireSlice(t, [][]float64{{2, 3}, {5, 6}}, s)

		whole, err := m.Submatrix(0, 0, 2, 2)
		require.NoError(t, err)
		require.True(t, whole.Equal(m))

		// end == start-1 is an empty dimension
		empty, err := m.Submatrix(1, 0, 0, 2)
		require.NoError(t, err)
		require.Equal(t, 0, empty.Rows())
		require.Equal(t, 3, empty.Cols())

		_, err = m.Submatrix(2, 0, 0, 2)
		require.ErrorIs(t, err, matrix.ErrBadShape)
		_, err = m.Submatrix(0, 0, 3, 2)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		_, err = m.Submatrix(-1, 0, 1, 1)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	})
}

func TestFlips(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		m := mustLayout(t, l, grid23)
		requireSlice(t, [][]float64{{3, 2, 1}, {6, 5, 4}}, m.FlipHorizontal())
		requireSlice(t, [][]float64{{4, 5, 6}, {1, 2, 3}}, m.FlipVertical())
	})
}

func TestRotations(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		m := mustLayout(t, l, grid23)
		cw := m.RotateClockwise()
		requireSlice(t, [][]float64{{4, 1}, {5, 2}, {6, 3}}, cw)
		ccw := m.RotateCounterClockwise()
		requireSlice(t, [][]float64{{3, 6}, {2, 5}, {1, 4}}, ccw)
		require.True(t, cw.RotateCounterClockwise().Equal(m))
		require.True(t, cw.RotateClockwise().Equal(m.FlipHorizontal().FlipVertical()))
	})
}

func TestMerge(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		a := mustLayout(t, l, [][]float64{{1, 2}})
		b := mustLayout(t, l, [][]float64{{3, 4}, {5, 6}})

		stacked, err := a.MergeCols(b)
		require.NoError(t, err)
		requireSlice(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, stacked)

		_, err = a.MergeRows(b)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

		c := mustLayout(t, l, [][]float64{{9}, {8}})
		joined, err := b.MergeRows(c)
		require.NoError(t, err)
		requireSlice(t, [][]float64{{3, 4, 9}, {5, 6, 8}}, joined)

		_, err = a.MergeCols(c)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		_, err = a.MergeCols(nil)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
	})
}

func TestExpand(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		m := mustLayout(t, l, [][]float64{{1, 2}})

		r, err := m.ExpandRows(2, 7)
		require.NoError(t, err)
		requireSlice(t, [][]float64{{1, 2}, {7, 7}, {7, 7}}, r)

		c, err := m.ExpandCols(1, 0)
		require.NoError(t, err)
		requireSlice(t, [][]float64{{1, 2, 0}}, c)

		same, err := m.ExpandRows(0, 1)
		require.NoError(t, err)
		require.True(t, same.Equal(m))

		_, err = m.ExpandRows(-1, 0)
		require.ErrorIs(t, err, matrix.ErrBadShape)
		_, err = m.ExpandCols(-2, 0)
		require.ErrorIs(t, err, matrix.ErrBadShape)

		// grown shapes that cannot be allocated fail before allocating
		_, err = m.ExpandRows(math.MaxInt, 0)
		require.ErrorIs(t, err, matrix.ErrBadShape)
		_, err = m.ExpandRows(math.MaxInt/2, 0)
		require.ErrorIs(t, err, matrix.ErrBadShape)
		_, err = m.ExpandCols(matrix.MaxCells, 0)
		require.ErrorIs(t, err, matrix.ErrBadShape)
	})
}

func TestMergeAndMultiply_OverflowingResult(t *testing.T) {
	// zero-width flat buffers cost nothing to allocate at any row count
	tall, err := matrix.From(matrix.MaxCells, 0, matrix.WithLayout(matrix.LayoutFlat))
	require.NoError(t, err)
	wide, err := matrix.From(0, matrix.MaxCells, matrix.WithLayout(matrix.LayoutFlat))
	require.NoError(t, err)

	_, err = tall.MergeCols(tall)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = wide.MergeRows(wide)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = tall.Multiply(wide)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
