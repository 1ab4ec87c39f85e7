// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func zeros(t *testing.T, r, c int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.From(r, c)
	require.NoError(t, err)

	return m
}

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    *matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(t, 2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(t, 2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(t, 2, 3), zeros(t, 2, 3), nil},
		{"row mismatch", zeros(t, 2, 3), zeros(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(t, 2, 3), zeros(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr),
				"expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSquare(zeros(t, 0, 0)))
	require.NoError(t, matrix.ValidateSquare(zeros(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(zeros(t, 2, 3)), matrix.ErrNonSquare)
}

// TestValidateMulCompatible checks the inner-dimension rule.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(zeros(t, 2, 3), zeros(t, 3, 4)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(zeros(t, 2, 3), zeros(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, zeros(t, 1, 1)), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(zeros(t, 1, 1), nil), matrix.ErrNilMatrix)
}

// TestValidateNotNil rejects a zero Matrix as well as a nil pointer.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(&matrix.Matrix{}), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(zeros(t, 0, 0)))
}
