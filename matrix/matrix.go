// SPDX-License-Identifier: MIT

// Package matrix - Matrix facade.
//
// What & Why:
//
//	*Matrix is the type users construct and call. It selects a Storage backend
//	at construction (WithLayout) and forwards every operation to kernels
//	written once against the Storage contract. Switching layouts never changes
//	observable results, only memory strategy.
//
// Complexity:
//
//	Rows/Cols/At/Set run in O(1). Copy/ToLayout/ToSlice are O(rows*cols).
package matrix

import (
	"fmt"
	"math"
)

const (
	opNew      = "New"
	opFrom     = "From"
	opIdentity = "Identity"
	opWrap     = "Wrap"
	opFill     = "Fill"
)

// Matrix is a dense rows×cols matrix of float64 values over a Storage backend.
// A Matrix is not safe for concurrent mutation; treat it as a value owned by
// one goroutine unless guarded externally.
type Matrix struct {
	store raw
	opts  Options
}

var _ fmt.Stringer = (*Matrix)(nil)

// New builds a matrix from rectangular nested data (copied, not aliased).
// Implementation:
//   - Stage 1: infer rows=len(data), cols=len(data[0]); every row must match.
//   - Stage 2: apply numeric policy when enabled.
//   - Stage 3: allocate the configured layout and copy in row-major order.
//
// Errors: ErrRaggedRows, ErrNaNInf (policy on).
// Complexity: O(rows*cols).
func New(data [][]float64, opts ...Option) (*Matrix, error) {
	m, err := build(data, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return m, nil
}

// build validates nested data against o and copies it into o's layout.
func build(data [][]float64, o Options) (*Matrix, error) {
	rows, cols, err := shapeOf(data)
	if err != nil {
		return nil, err
	}
	if o.validateNaNInf {
		for i, row := range data {
			for j, v := range row {
				if !isFinite(v) {
					return nil, storageErrorf("Matrix", ctxSet, i, j, ErrNaNInf)
				}
			}
		}
	}

	s := newScratch(o.layout, rows, cols)
	for i, row := range data {
		for j, v := range row {
			s.put(i, j, v)
		}
	}

	return &Matrix{store: s, opts: o}, nil
}

// From returns a rows×cols matrix filled with zeros.
// Errors: ErrInvalidDimensions for negative shapes.
func From(rows, cols int, opts ...Option) (*Matrix, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, matrixErrorf(opFrom, err)
	}
	o := gatherOptions(opts...)

	return &Matrix{store: newStorage(o.layout, rows, cols), opts: o}, nil
}

// Zeroes is a synonym of From with an intention-revealing name.
func Zeroes(rows, cols int, opts ...Option) (*Matrix, error) {
	return From(rows, cols, opts...)
}

// Identity returns I_size (ones on the diagonal, zeros elsewhere).
// Complexity: O(size^2) zeroing + O(size) diagonal writes.
func Identity(size int, opts ...Option) (*Matrix, error) {
	if err := checkDims(size, size); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	o := gatherOptions(opts...)
	s := newStorage(o.layout, size, size)
	for i := 0; i < size; i++ { // fixed i order guarantees reproducibility
		s.put(i, i, 1.0)
	}

	return &Matrix{store: s, opts: o}, nil
}

// Wrap puts a facade over an existing Storage without copying it.
// The Layout option is ignored: the storage decides its own layout.
func Wrap(s Storage, opts ...Option) (*Matrix, error) {
	if s == nil {
		return nil, matrixErrorf(opWrap, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	o.layout = s.Layout()

	return &Matrix{store: rawOf(s), opts: o}, nil
}

// FromStorage wraps s with default options; a nil storage yields nil.
func FromStorage(s Storage) *Matrix {
	m, err := Wrap(s)
	if err != nil {
		return nil
	}

	return m
}

// shapeOf infers (rows, cols) and rejects ragged input.
func shapeOf(data [][]float64) (int, int, error) {
	rows := len(data)
	if rows == 0 {
		return 0, 0, nil
	}
	cols := len(data[0])
	for i := 1; i < rows; i++ {
		if len(data[i]) != cols {
			return 0, 0, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(data[i]), cols, ErrRaggedRows)
		}
	}

	return rows, cols, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// derive allocates a scratch result that inherits m's layout and policy.
func (m *Matrix) derive(rows, cols int) *Matrix {
	return &Matrix{store: newScratch(m.store.Layout(), rows, cols), opts: m.opts}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.store.Rows() }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.store.Cols() }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix) Shape() (rows, cols int) { return m.store.Rows(), m.store.Cols() }

// Len returns rows*cols.
func (m *Matrix) Len() int { return m.store.Rows() * m.store.Cols() }

// Layout reports the backend in use.
func (m *Matrix) Layout() Layout { return m.store.Layout() }

// Options returns the effective options (inherited by derived matrices).
func (m *Matrix) Options() Options { return m.opts }

// Storage exposes the backend. Writes through it bypass the numeric policy.
func (m *Matrix) Storage() Storage { return m.store }

// At returns the element at (i, j) or ErrOutOfRange.
func (m *Matrix) At(i, j int) (float64, error) { return m.store.At(i, j) }

// Set writes v at (i, j). Bounds are checked before the policy and before the
// write, so a failed Set never changes m.
// Errors: ErrOutOfRange; ErrNaNInf when WithValidateNaNInf is active.
func (m *Matrix) Set(i, j int, v float64) error {
	if err := checkIndex(m.Rows(), m.Cols(), i, j); err != nil {
		return storageErrorf(backendName(m.store), ctxSet, i, j, err)
	}
	if m.opts.validateNaNInf && !isFinite(v) {
		return storageErrorf("Matrix", ctxSet, i, j, ErrNaNInf)
	}
	m.store.put(i, j, v)

	return nil
}

// Fill overwrites every element with v.
// Errors: ErrNaNInf when the policy is on and v is not finite.
func (m *Matrix) Fill(v float64) error {
	if m.opts.validateNaNInf && !isFinite(v) {
		return matrixErrorf(opFill, ErrNaNInf)
	}
	m.store.Fill(v)

	return nil
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) ([]float64, error) {
	if err := checkRow(m.Rows(), i); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, err)
	}
	c := m.Cols()
	out := make([]float64, c)
	if data, ok := flatData(m.store); ok {
		copy(out, data[i*c:(i+1)*c])
		return out, nil
	}
	for j := 0; j < c; j++ {
		out[j] = m.store.get(i, j)
	}

	return out, nil
}

// Col returns a freshly materialised copy of column j.
func (m *Matrix) Col(j int) ([]float64, error) {
	if err := checkRow(m.Cols(), j); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxCol, j, err)
	}
	r := m.Rows()
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		out[i] = m.store.get(i, j)
	}

	return out, nil
}

// Copy returns an independent deep copy with the same layout and options.
func (m *Matrix) Copy() *Matrix {
	return &Matrix{store: rawOf(m.store.Clone()), opts: m.opts}
}

// ToLayout returns a copy backed by the given layout. Logical positions are
// preserved; converting to the current layout still copies.
func (m *Matrix) ToLayout(l Layout) *Matrix {
	o := m.opts
	o.layout = l

	return &Matrix{store: convertStorage(m.store, l), opts: o}
}

// ToSlice returns the nested row-major representation (freshly allocated).
func (m *Matrix) ToSlice() [][]float64 {
	r, c := m.Shape()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j] = m.store.get(i, j)
		}
	}

	return out
}

// Equal reports value equality: same shape and every element ==.
// Layouts may differ. NaN never equals NaN.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil {
		return false
	}
	r, c := m.Shape()
	if r != other.Rows() || c != other.Cols() {
		return false
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if m.store.get(i, j) != other.store.get(i, j) {
				return false
			}
		}
	}

	return true
}

// String renders rows as "[1, 2]\n[3, 4]\n".
func (m *Matrix) String() string { return formatRows(m.store) }
