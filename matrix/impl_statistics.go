// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Whole-matrix, per-row and per-column reductions: Sum, Prod, Mean,
//     Variance (population), Std, Max, Min and the arg-extreme forms.
//   - Column centering / row centering as thin compositions over the means.
//
// Exposed API:
//   - Sum/Prod/Mean/Variance/Std          -> float64
//   - <op>PerRow / <op>PerCol             -> []float64 (len rows / len cols)
//   - Max/Min                             -> (float64, error)
//   - MaxPerRow/Col, MinPerRow/Col        -> ([]float64, error)
//   - MaxIndex/MinIndex                   -> (Index, error)
//   - CenterColumns/CenterRows            -> (*Matrix, []float64)
//
// Determinism & Performance:
//   - Row-major accumulation order everywhere; per-column folds visit rows in
//     ascending order, so every layout produces bit-identical sums.
//   - Empty input: Sum=0, Prod=1, Mean/Variance/Std=NaN, extremes → ErrEmpty.
//
// AI-Hints:
//   - Max/Min and their per-row/per-col forms follow math.Max/math.Min: any NaN
//     in the scanned cells makes the result NaN, wherever it sits.
//   - MaxIndex/MinIndex use strict comparisons: the first occurrence in
//     row-major order wins ties, and a NaN never replaces the running extreme.

package matrix

import "math"

const (
	opMax       = "Max"
	opMin       = "Min"
	opMaxPerRow = "MaxPerRow"
	opMaxPerCol = "MaxPerCol"
	opMinPerRow = "MinPerRow"
	opMinPerCol = "MinPerCol"
	opMaxIndex  = "MaxIndex"
	opMinIndex  = "MinIndex"
)

type foldFunc func(acc, v float64) float64

func addFold(acc, v float64) float64 { return acc + v }
func mulFold(acc, v float64) float64 { return acc * v }

// foldAll folds every element in row-major order.
func (m *Matrix) foldAll(init float64, f foldFunc) float64 {
	rows, cols := m.Shape()
	acc := init
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			acc = f(acc, m.store.get(i, j))
		}
	}

	return acc
}

// foldRows folds each row left to right; len(out) == rows.
func (m *Matrix) foldRows(init float64, f foldFunc) []float64 {
	rows, cols := m.Shape()
	out := make([]float64, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		acc := init
		for j = 0; j < cols; j++ {
			acc = f(acc, m.store.get(i, j))
		}
		out[i] = acc
	}

	return out
}

// foldCols folds each column top to bottom; len(out) == cols.
func (m *Matrix) foldCols(init float64, f foldFunc) []float64 {
	rows, cols := m.Shape()
	out := make([]float64, cols)
	for j := range out {
		out[j] = init
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out[j] = f(out[j], m.store.get(i, j))
		}
	}

	return out
}

// ---------- sums & products ----------

// Sum returns Σ m[i][j] (0 for an empty matrix).
func (m *Matrix) Sum() float64 { return m.foldAll(0, addFold) }

// SumPerRow returns the sum of each row.
func (m *Matrix) SumPerRow() []float64 { return m.foldRows(0, addFold) }

// SumPerCol returns the sum of each column.
func (m *Matrix) SumPerCol() []float64 { return m.foldCols(0, addFold) }

// Prod returns Π m[i][j] (1 for an empty matrix).
func (m *Matrix) Prod() float64 { return m.foldAll(1, mulFold) }

// ProdPerRow returns the product of each row.
func (m *Matrix) ProdPerRow() []float64 { return m.foldRows(1, mulFold) }

// ProdPerCol returns the product of each column.
func (m *Matrix) ProdPerCol() []float64 { return m.foldCols(1, mulFold) }

// ---------- moments ----------

// Mean returns Sum / (rows*cols); NaN when empty.
func (m *Matrix) Mean() float64 {
	return m.Sum() / float64(m.Len())
}

// MeanPerRow returns each row sum divided by cols.
func (m *Matrix) MeanPerRow() []float64 {
	out := m.SumPerRow()
	n := float64(m.Cols())
	for i := range out {
		out[i] /= n
	}

	return out
}

// MeanPerCol returns each column sum divided by rows.
func (m *Matrix) MeanPerCol() []float64 {
	out := m.SumPerCol()
	n := float64(m.Rows())
	for j := range out {
		out[j] /= n
	}

	return out
}

// Variance returns the population variance: the mean of squared deviations
// from Mean, divisor rows*cols. NaN when empty.
func (m *Matrix) Variance() float64 {
	mean := m.Mean()

	return m.foldAll(0, squaredDev(mean)) / float64(m.Len())
}

// VariancePerRow returns the population variance of each row.
func (m *Matrix) VariancePerRow() []float64 {
	rows, cols := m.Shape()
	means := m.MeanPerRow()
	out := make([]float64, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		acc := 0.0
		dev := squaredDev(means[i])
		for j = 0; j < cols; j++ {
			acc = dev(acc, m.store.get(i, j))
		}
		out[i] = acc / float64(cols)
	}

	return out
}

// VariancePerCol returns the population variance of each column.
func (m *Matrix) VariancePerCol() []float64 {
	rows, cols := m.Shape()
	means := m.MeanPerCol()
	out := make([]float64, cols)
	var i, j int
	var d float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			d = m.store.get(i, j) - means[j]
			out[j] += float64(d * d)
		}
	}
	for j = range out {
		out[j] /= float64(rows)
	}

	return out
}

// squaredDev accumulates (v-mean)^2 without fused multiply-add.
func squaredDev(mean float64) foldFunc {
	return func(acc, v float64) float64 {
		d := v - mean
		return acc + float64(d*d)
	}
}

// Std returns sqrt(Variance()).
func (m *Matrix) Std() float64 { return math.Sqrt(m.Variance()) }

// StdPerRow returns sqrt of each row variance.
func (m *Matrix) StdPerRow() []float64 { return sqrtAll(m.VariancePerRow()) }

// StdPerCol returns sqrt of each column variance.
func (m *Matrix) StdPerCol() []float64 { return sqrtAll(m.VariancePerCol()) }

func sqrtAll(xs []float64) []float64 {
	for k, v := range xs {
		xs[k] = math.Sqrt(v)
	}

	return xs
}

// ---------- extremes ----------

func greater(a, b float64) bool { return a > b }
func less(a, b float64) bool    { return a < b }

// extremeIndex scans row-major and keeps the first position where better holds.
func (m *Matrix) extremeIndex(better func(a, b float64) bool) Index {
	rows, cols := m.Shape()
	best := m.store.get(0, 0)
	at := Index{}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = m.store.get(i, j)
			if better(v, best) {
				best, at = v, Index{Row: i, Col: j}
			}
		}
	}

	return at
}

// extremeValue folds every cell row-major with pick.
func (m *Matrix) extremeValue(pick func(a, b float64) float64) float64 {
	rows, cols := m.Shape()
	best := m.store.get(0, 0)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			best = pick(best, m.store.get(i, j))
		}
	}

	return best
}

// extremeRows folds each row with pick.
func (m *Matrix) extremeRows(pick func(a, b float64) float64) []float64 {
	rows, cols := m.Shape()
	out := make([]float64, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		out[i] = m.store.get(i, 0)
		for j = 1; j < cols; j++ {
			out[i] = pick(out[i], m.store.get(i, j))
		}
	}

	return out
}

// extremeCols folds each column with pick, visiting rows in ascending order.
func (m *Matrix) extremeCols(pick func(a, b float64) float64) []float64 {
	rows, cols := m.Shape()
	out := make([]float64, cols)
	var i, j int
	for j = 0; j < cols; j++ {
		out[j] = m.store.get(0, j)
	}
	for i = 1; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out[j] = pick(out[j], m.store.get(i, j))
		}
	}

	return out
}

func (m *Matrix) requireNonEmpty(op string) error {
	if m.Len() == 0 {
		return matrixErrorf(op, ErrEmpty)
	}

	return nil
}

// Max returns the largest element, or NaN if any element is NaN.
// Errors: ErrEmpty.
func (m *Matrix) Max() (float64, error) {
	if err := m.requireNonEmpty(opMax); err != nil {
		return 0, err
	}

	return m.extremeValue(math.Max), nil
}

// Min returns the smallest element, or NaN if any element is NaN.
// Errors: ErrEmpty.
func (m *Matrix) Min() (float64, error) {
	if err := m.requireNonEmpty(opMin); err != nil {
		return 0, err
	}

	return m.extremeValue(math.Min), nil
}

// MaxIndex returns the position of the first maximum in row-major order.
// Errors: ErrEmpty.
func (m *Matrix) MaxIndex() (Index, error) {
	if err := m.requireNonEmpty(opMaxIndex); err != nil {
		return Index{}, err
	}
	at := m.extremeIndex(greater)

	return at, nil
}

// MinIndex returns the position of the first minimum in row-major order.
// Errors: ErrEmpty.
func (m *Matrix) MinIndex() (Index, error) {
	if err := m.requireNonEmpty(opMinIndex); err != nil {
		return Index{}, err
	}
	at := m.extremeIndex(less)

	return at, nil
}

// MaxPerRow returns the maximum of each row; a row holding NaN yields NaN.
// Errors: ErrEmpty.
func (m *Matrix) MaxPerRow() ([]float64, error) {
	if err := m.requireNonEmpty(opMaxPerRow); err != nil {
		return nil, err
	}

	return m.extremeRows(math.Max), nil
}

// MaxPerCol returns the maximum of each column.
// Errors: ErrEmpty.
func (m *Matrix) MaxPerCol() ([]float64, error) {
	if err := m.requireNonEmpty(opMaxPerCol); err != nil {
		return nil, err
	}

	return m.extremeCols(math.Max), nil
}

// MinPerRow returns the minimum of each row; a row holding NaN yields NaN.
// Errors: ErrEmpty.
func (m *Matrix) MinPerRow() ([]float64, error) {
	if err := m.requireNonEmpty(opMinPerRow); err != nil {
		return nil, err
	}

	return m.extremeRows(math.Min), nil
}

// MinPerCol returns the minimum of each column.
// Errors: ErrEmpty.
func (m *Matrix) MinPerCol() ([]float64, error) {
	if err := m.requireNonEmpty(opMinPerCol); err != nil {
		return nil, err
	}

	return m.extremeCols(math.Min), nil
}

// ---------- centering ----------

// CenterColumns subtracts the per-column mean from every element.
// Zero-size input: returns a copy and zero means (len = cols).
// Complexity: O(r*c).
func (m *Matrix) CenterColumns() (*Matrix, []float64) {
	if m.Len() == 0 {
		return m.Copy(), make([]float64, m.Cols())
	}
	means := m.MeanPerCol()
	rows, cols := m.Shape()
	res := m.derive(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.store.put(i, j, m.store.get(i, j)-means[j])
		}
	}

	return res, means
}

// CenterRows subtracts the per-row mean from every element.
// Zero-size input: returns a copy and zero means (len = rows).
// Complexity: O(r*c).
func (m *Matrix) CenterRows() (*Matrix, []float64) {
	if m.Len() == 0 {
		return m.Copy(), make([]float64, m.Rows())
	}
	means := m.MeanPerRow()
	rows, cols := m.Shape()
	res := m.derive(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.store.put(i, j, m.store.get(i, j)-means[i])
		}
	}

	return res, means
}
