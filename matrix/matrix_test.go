// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestNew_CopiesInput(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		data := [][]float64{{1, 2}, {3, 4}}
		m := mustLayout(t, l, data)
		data[0][0] = 100
		requireSlice(t, [][]float64{{1, 2}, {3, 4}}, m)
		require.Equal(t, l, m.Layout())
	})
}

func TestNew_RaggedRowsFailFast(t *testing.T) {
	_, err := matrix.New([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

func TestNew_EmptyInputs(t *testing.T) {
	m := mustNew(t, nil)
	r, c := m.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 0, c)

	m = mustNew(t, [][]float64{{}, {}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 0, m.Cols())
}

func TestFrom_ZeroFilledAndNegative(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		m, err := matrix.From(2, 3, matrix.WithLayout(l))
		require.NoError(t, err)
		requireSlice(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, m)

		z, err := matrix.Zeroes(2, 3, matrix.WithLayout(l))
		require.NoError(t, err)
		require.True(t, z.Equal(m))
	})
	_, err := matrix.From(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Identity(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFrom_OverflowingShapes(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		for _, shape := range [][2]int{
			{matrix.MaxCells, 2},
			{2, matrix.MaxCells},
			{3, math.MaxInt / 2},
			{math.MaxInt, 0},
			{0, math.MaxInt},
		} {
			_, err := matrix.From(shape[0], shape[1], matrix.WithLayout(l))
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "%v", shape)
		}
		_, err := matrix.Identity(matrix.MaxCells, matrix.WithLayout(l))
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	})
}

func TestIdentity_Size3(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		m, err := matrix.Identity(3, matrix.WithLayout(l))
		require.NoError(t, err)
		requireSlice(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, m)
	})
}

func TestAt_OutOfBoundsScenario(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		m := mustLayout(t, l, [][]float64{{1, 2}, {3, 4}})
		_, err := m.At(2, 0)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.Contains(t, err.Error(), "(2,0)")
		require.Contains(t, err.Error(), "out of range")
	})
}

func TestSet_FailureLeavesMatrixUnchanged(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		m := mustLayout(t, l, [][]float64{{1, 2}, {3, 4}})
		require.ErrorIs(t, m.Set(0, 2, 9), matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(-1, 0, 9), matrix.ErrOutOfRange)
		requireSlice(t, [][]float64{{1, 2}, {3, 4}}, m)

		require.NoError(t, m.Set(1, 1, 40))
		v, err := m.At(1, 1)
		require.NoError(t, err)
		require.Equal(t, 40.0, v)
	})
}

func TestNumericPolicy(t *testing.T) {
	// default: NaN accepted
	m := mustNew(t, [][]float64{{1, 2}})
	require.NoError(t, m.Set(0, 0, math.NaN()))
	require.False(t, m.Options().ValidateNaNInf())

	strict := mustNew(t, [][]float64{{1, 2}}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Fill(math.NaN()), matrix.ErrNaNInf)
	requireSlice(t, [][]float64{{1, 2}}, strict)

	// bounds are checked before the policy
	require.ErrorIs(t, strict.Set(5, 5, math.NaN()), matrix.ErrOutOfRange)

	_, err := matrix.New([][]float64{{1, math.Inf(-1)}}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// derived matrices inherit the policy
	d := strict.Transpose()
	require.True(t, d.Options().ValidateNaNInf())
	require.ErrorIs(t, d.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestFill(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		m := mustLayout(t, l, [][]float64{{1, 2}, {3, 4}})
		require.NoError(t, m.Fill(-1))
		requireSlice(t, [][]float64{{-1, -1}, {-1, -1}}, m)
	})
}

func TestRowCol_Copies(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		m := mustLayout(t, l, [][]float64{{1, 2, 3}, {4, 5, 6}})
		row, err := m.Row(1)
		require.NoError(t, err)
		require.Equal(t, []float64{4, 5, 6}, row)
		row[0] = 100
		v, _ := m.At(1, 0)
		require.Equal(t, 4.0, v)

		col, err := m.Col(2)
		require.NoError(t, err)
		require.Equal(t, []float64{3, 6}, col)

		_, err = m.Row(2)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		_, err = m.Col(-1)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	})
}

func TestRow_OnZeroColumnMatrix(t *testing.T) {
	m := mustNew(t, [][]float64{{}, {}})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Empty(t, row)
}

func TestCopy_IsDeep(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		m := mustLayout(t, l, [][]float64{{1, 2}})
		cp := m.Copy()
		require.Equal(t, l, cp.Layout())
		require.NoError(t, cp.Set(0, 0, 9))
		requireSlice(t, [][]float64{{1, 2}}, m)
	})
}

func TestToLayout_PreservesPositions(t *testing.T) {
	data := randData(4, 3, 7)
	for _, from := range matrix.Layouts {
		m := mustLayout(t, from, data)
		for _, to := range matrix.Layouts {
			c := m.ToLayout(to)
			require.Equal(t, to, c.Layout())
			require.Equal(t, to, c.Options().Layout())
			require.True(t, c.Equal(m))
		}
	}
}

func TestEqual(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}})
	require.True(t, a.Equal(mustNew(t, [][]float64{{1, 2}}, matrix.WithLayout(matrix.LayoutNested))))
	require.False(t, a.Equal(mustNew(t, [][]float64{{1, 3}})))
	require.False(t, a.Equal(mustNew(t, [][]float64{{1}, {2}})))
	require.False(t, a.Equal(nil))

	n := mustNew(t, [][]float64{{math.NaN()}})
	require.False(t, n.Equal(n))
}

func TestString(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		m := mustLayout(t, l, [][]float64{{1, 2}, {3, 4.5}})
		require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
	})
}

func TestWrap_CustomStorage(t *testing.T) {
	m := mustHidden(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, matrix.LayoutFlat, m.Layout())
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 5, 1), matrix.ErrOutOfRange)

	sum, err := m.Add(m)
	require.NoError(t, err)
	requireSlice(t, [][]float64{{2, 4}, {6, 8}}, sum)

	_, err = matrix.Wrap(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Nil(t, matrix.FromStorage(nil))

	fb, err := matrix.NewFlatBuffer(1, 1)
	require.NoError(t, err)
	w := matrix.FromStorage(fb)
	require.NoError(t, w.Set(0, 0, 5))
	v, err := fb.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v) // wrap does not copy
}

func TestSetAtRoundTrip_AllCells(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		m, err := matrix.From(3, 5, matrix.WithLayout(l))
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			for j := 0; j < 5; j++ {
				v := float64(i*5+j) + 0.25
				require.NoError(t, m.Set(i, j, v))
				got, err := m.At(i, j)
				require.NoError(t, err)
				require.Equal(t, v, got)
			}
		}
		require.Equal(t, 15, m.Len())
	})
}
