// SPDX-License-Identifier: MIT
package matrix_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestJSON_RoundTrip(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		m := mustLayout(t, l, randData(3, 4, 99))
		data, err := m.ToJSON()
		require.NoError(t, err)

		back, err := matrix.FromJSON(data, matrix.WithLayout(l))
		require.NoError(t, err)
		require.True(t, back.Equal(m))
		require.Equal(t, l, back.Layout())
	})
}

func TestJSON_WireForm(t *testing.T) {
	data, err := mustNew(t, [][]float64{{1, 2}, {3, 4.5}}).ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `[[1,2],[3,4.5]]`, string(data))

	empty, err := mustNew(t, nil).ToJSON()
	require.NoError(t, err)
	require.Equal(t, "[]", string(empty))
}

func TestJSON_Errors(t *testing.T) {
	_, err := matrix.FromJSON([]byte(`[[1,2],[3]]`))
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.FromJSON([]byte(`{"rows":1}`))
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromJSON([]byte(`[[1,`))
	require.Error(t, err)

	_, err = mustNew(t, [][]float64{{math.NaN()}}).ToJSON()
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestJSON_NullIsRejected(t *testing.T) {
	for _, in := range []string{`null`, ` null `, `[null]`, `[[1,2],null]`, `[[1,null]]`, `[[null]]`} {
		_, err := matrix.FromJSON([]byte(in))
		require.ErrorIs(t, err, matrix.ErrBadShape, in)
	}

	// a null field leaves an existing matrix as it was
	m := mustNew(t, [][]float64{{7}})
	require.NoError(t, json.Unmarshal([]byte(`null`), m))
	requireSlice(t, [][]float64{{7}}, m)

	var doc struct {
		M matrix.Matrix `json:"m"`
	}
	require.ErrorIs(t, json.Unmarshal([]byte(`{"m":[[1,null]]}`), &doc), matrix.ErrBadShape)
}

func TestJSON_ZeroRowShapesCollapse(t *testing.T) {
	forEachLayout(t, func(t *testing.T, l matrix.Layout) {
		wide, err := matrix.From(0, 3, matrix.WithLayout(l))
		require.NoError(t, err)
		data, err := wide.ToJSON()
		require.NoError(t, err)
		require.Equal(t, "[]", string(data))

		back, err := matrix.FromJSON(data, matrix.WithLayout(l))
		require.NoError(t, err)
		r, c := back.Shape()
		require.Equal(t, [2]int{0, 0}, [2]int{r, c})

		// N×0 keeps its row count
		tall, err := matrix.From(2, 0, matrix.WithLayout(l))
		require.NoError(t, err)
		data, err = tall.ToJSON()
		require.NoError(t, err)
		require.Equal(t, "[[],[]]", string(data))
		back, err = matrix.FromJSON(data, matrix.WithLayout(l))
		require.NoError(t, err)
		r, c = back.Shape()
		require.Equal(t, [2]int{2, 0}, [2]int{r, c})
	})
}

func TestJSON_EncodingJSONIntegration(t *testing.T) {
	type doc struct {
		Name string         `json:"name"`
		M    *matrix.Matrix `json:"m"`
	}
	in := doc{Name: "a", M: mustNew(t, grid23)}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"a","m":[[1,2,3],[4,5,6]]}`, string(raw))

	var out doc
	require.NoError(t, json.Unmarshal(raw, &out))
	require.True(t, out.M.Equal(in.M))
	require.Equal(t, matrix.DefaultLayout, out.M.Layout())
}

func TestJSON_UnmarshalKeepsReceiverOptions(t *testing.T) {
	m := mustNew(t, [][]float64{{0}}, matrix.WithLayout(matrix.LayoutNested), matrix.WithValidateNaNInf())
	require.NoError(t, json.Unmarshal([]byte(`[[5,6]]`), m))
	require.Equal(t, matrix.LayoutNested, m.Layout())
	require.True(t, m.Options().ValidateNaNInf())
	requireSlice(t, [][]float64{{5, 6}}, m)
}
