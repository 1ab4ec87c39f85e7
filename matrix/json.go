// SPDX-License-Identifier: MIT

// Package matrix - JSON encoding.
//
// The wire form is the nested row-major array: [[1,2],[3,4]]. A 0×0 matrix
// encodes as []. Column counts of N×0 matrices survive the round trip as
// [[],[]]; 0×N shapes collapse to 0×0 because [] carries no column count.
// null is not a matrix: a null document, row or cell fails with ErrBadShape.
package matrix

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	opToJSON   = "ToJSON"
	opFromJSON = "FromJSON"
)

var (
	_ json.Marshaler   = (*Matrix)(nil)
	_ json.Unmarshaler = (*Matrix)(nil)
)

// ToJSON encodes m as a nested array.
// NaN and ±Inf have no JSON form and fail with ErrNaNInf.
func (m *Matrix) ToJSON() ([]byte, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToJSON, err)
	}
	if !m.Every(func(v float64, _ Index) bool { return isFinite(v) }) {
		return nil, matrixErrorf(opToJSON, ErrNaNInf)
	}
	out, err := json.Marshal(m.ToSlice())
	if err != nil {
		return nil, matrixErrorf(opToJSON, err)
	}

	return out, nil
}

// FromJSON decodes a nested array into a new matrix built with opts.
// Errors: ErrRaggedRows, ErrNaNInf (policy on), or the decoder error.
func FromJSON(data []byte, opts ...Option) (*Matrix, error) {
	m, err := decodeNested(data, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opFromJSON, err)
	}

	return m, nil
}

// MarshalJSON implements json.Marshaler.
func (m *Matrix) MarshalJSON() ([]byte, error) { return m.ToJSON() }

// UnmarshalJSON implements json.Unmarshaler. A zero Matrix decodes with the
// default options; an existing one keeps its layout and policy. A JSON null
// leaves m unchanged, as encoding/json expects of unmarshalers.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	if m == nil {
		return matrixErrorf(opFromJSON, ErrNilMatrix)
	}
	if isJSONNull(data) {
		return nil
	}
	o := gatherOptions()
	if m.store != nil {
		o = m.opts
		o.layout = m.Layout()
	}
	built, err := decodeNested(data, o)
	if err != nil {
		return matrixErrorf(opFromJSON, err)
	}
	*m = *built

	return nil
}

var jsonNull = []byte("null")

func isJSONNull(data []byte) bool { return bytes.Equal(bytes.TrimSpace(data), jsonNull) }

// decodeNested reads cells through pointers so that null stays distinguishable
// from 0.
func decodeNested(data []byte, o Options) (*Matrix, error) {
	if isJSONNull(data) {
		return nil, fmt.Errorf("%w: null matrix", ErrBadShape)
	}
	var cells [][]*float64
	if err := json.Unmarshal(data, &cells); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, errors.Join(ErrBadShape, err)
		}
		return nil, err
	}

	rows := make([][]float64, len(cells))
	for i, row := range cells {
		if row == nil {
			return nil, fmt.Errorf("%w: row %d is null", ErrBadShape, i)
		}
		rows[i] = make([]float64, len(row))
		for j, v := range row {
			if v == nil {
				return nil, fmt.Errorf("%w: null cell at %s", ErrBadShape, Index{Row: i, Col: j})
			}
			rows[i][j] = *v
		}
	}

	return build(rows, o)
}
