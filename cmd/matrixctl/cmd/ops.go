// SPDX-License-Identifier: MIT
package cmd

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvmat/matrix"
)

var (
	errUnknownOp = errors.New("unknown operation")
	errArgCount  = errors.New("wrong number of --arg values")
	errArgInt    = errors.New("--arg value must be an integer")
)

// unaryOp applies to one matrix with a fixed number of numeric arguments.
type unaryOp struct {
	args int
	help string
	run  func(m *matrix.Matrix, args []float64) (any, error)
}

// binaryOp combines two matrices.
type binaryOp struct {
	help string
	run  func(a, b *matrix.Matrix) (*matrix.Matrix, error)
}

func matrixOnly(f func(m *matrix.Matrix) *matrix.Matrix) func(*matrix.Matrix, []float64) (any, error) {
	return func(m *matrix.Matrix, _ []float64) (any, error) { return f(m), nil }
}

func scalar(f func(m *matrix.Matrix) float64) func(*matrix.Matrix, []float64) (any, error) {
	return func(m *matrix.Matrix, _ []float64) (any, error) { return f(m), nil }
}

func vector(f func(m *matrix.Matrix) []float64) func(*matrix.Matrix, []float64) (any, error) {
	return func(m *matrix.Matrix, _ []float64) (any, error) { return f(m), nil }
}

func checked[T any](f func(m *matrix.Matrix) (T, error)) func(*matrix.Matrix, []float64) (any, error) {
	return func(m *matrix.Matrix, _ []float64) (any, error) { return f(m) }
}

func position(f func(m *matrix.Matrix) (matrix.Index, error)) func(*matrix.Matrix, []float64) (any, error) {
	return func(m *matrix.Matrix, _ []float64) (any, error) {
		at, err := f(m)
		if err != nil {
			return nil, err
		}
		return [2]int{at.Row, at.Col}, nil
	}
}

func intArg(v float64) (int, error) {
	if v != math.Trunc(v) || math.Abs(v) >= -math.MinInt {
		return 0, fmt.Errorf("%w: %g", errArgInt, v)
	}

	return int(v), nil
}

func intArgs(vs []float64) ([]int, error) {
	out := make([]int, len(vs))
	for i, v := range vs {
		n, err := intArg(v)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}

	return out, nil
}

var unaryOps = map[string]unaryOp{
	"transpose":   {help: "swap rows and columns", run: matrixOnly((*matrix.Matrix).Transpose)},
	"flip-h":      {help: "reverse each row", run: matrixOnly((*matrix.Matrix).FlipHorizontal)},
	"flip-v":      {help: "reverse row order", run: matrixOnly((*matrix.Matrix).FlipVertical)},
	"rotate-cw":   {help: "rotate 90° clockwise", run: matrixOnly((*matrix.Matrix).RotateClockwise)},
	"rotate-ccw":  {help: "rotate 90° counter-clockwise", run: matrixOnly((*matrix.Matrix).RotateCounterClockwise)},
	"cumsum":      {help: "row-major running sum", run: matrixOnly((*matrix.Matrix).CumulativeSum)},
	"cumsum-rows": {help: "running sum along each row", run: matrixOnly((*matrix.Matrix).CumulativeSumPerRow)},
	"cumsum-cols": {help: "running sum down each column", run: matrixOnly((*matrix.Matrix).CumulativeSumPerCol)},
	"cumprod":     {help: "row-major running product", run: matrixOnly((*matrix.Matrix).CumulativeProd)},
	"det":         {help: "determinant (square only)", run: checked((*matrix.Matrix).Determinant)},
	"trace":       {help: "sum of the main diagonal (square only)", run: checked((*matrix.Matrix).Trace)},
	"diagonal":    {help: "main diagonal", run: vector((*matrix.Matrix).Diagonal)},
	"sum":         {help: "sum of all elements", run: scalar((*matrix.Matrix).Sum)},
	"prod":        {help: "product of all elements", run: scalar((*matrix.Matrix).Prod)},
	"mean":        {help: "mean of all elements", run: scalar((*matrix.Matrix).Mean)},
	"variance":    {help: "population variance", run: scalar((*matrix.Matrix).Variance)},
	"std":         {help: "population standard deviation", run: scalar((*matrix.Matrix).Std)},
	"sum-rows":    {help: "sum of each row", run: vector((*matrix.Matrix).SumPerRow)},
	"sum-cols":    {help: "sum of each column", run: vector((*matrix.Matrix).SumPerCol)},
	"mean-rows":   {help: "mean of each row", run: vector((*matrix.Matrix).MeanPerRow)},
	"mean-cols":   {help: "mean of each column", run: vector((*matrix.Matrix).MeanPerCol)},
	"max":         {help: "largest element", run: checked((*matrix.Matrix).Max)},
	"min":         {help: "smallest element", run: checked((*matrix.Matrix).Min)},
	"argmax":      {help: "first position of the largest element", run: position((*matrix.Matrix).MaxIndex)},
	"argmin":      {help: "first position of the smallest element", run: position((*matrix.Matrix).MinIndex)},
	"flat":        {help: "row-major element list", run: vector((*matrix.Matrix).Flat)},
	"nonzero":     {help: "non-zero elements in row-major order", run: vector(func(m *matrix.Matrix) []float64 { return m.FilterNonZero().Values() })},
	"center-cols": {help: "subtract each column mean", run: matrixOnly(func(m *matrix.Matrix) *matrix.Matrix { c, _ := m.CenterColumns(); return c })},
	"center-rows": {help: "subtract each row mean", run: matrixOnly(func(m *matrix.Matrix) *matrix.Matrix { c, _ := m.CenterRows(); return c })},
	"scale": {args: 1, help: "multiply by --arg s", run: func(m *matrix.Matrix, a []float64) (any, error) {
		return m.MultiplyWithScalar(a[0]), nil
	}},
	"clip": {args: 2, help: "clamp into [--arg lo, --arg hi]", run: func(m *matrix.Matrix, a []float64) (any, error) {
		return m.Clip(a[0], a[1])
	}},
	"replace-nan": {args: 1, help: "replace NaN and ±Inf by --arg v", run: func(m *matrix.Matrix, a []float64) (any, error) {
		return m.ReplaceInfNaN(a[0])
	}},
	"minor": {args: 2, help: "drop row --arg i and column --arg j", run: func(m *matrix.Matrix, a []float64) (any, error) {
		ix, err := intArgs(a)
		if err != nil {
			return nil, err
		}
		return m.MinorSubmatrix(ix[0], ix[1])
	}},
	"submatrix": {args: 4, help: "inclusive window rows r0..r1, cols c0..c1 from --arg r0,c0,r1,c1", run: func(m *matrix.Matrix, a []float64) (any, error) {
		ix, err := intArgs(a)
		if err != nil {
			return nil, err
		}
		return m.Submatrix(ix[0], ix[1], ix[2], ix[3])
	}},
	"expand-rows": {args: 2, help: "append --arg n rows filled with --arg v", run: func(m *matrix.Matrix, a []float64) (any, error) {
		n, err := intArg(a[0])
		if err != nil {
			return nil, err
		}
		return m.ExpandRows(n, a[1])
	}},
	"expand-cols": {args: 2, help: "append --arg n columns filled with --arg v", run: func(m *matrix.Matrix, a []float64) (any, error) {
		n, err := intArg(a[0])
		if err != nil {
			return nil, err
		}
		return m.ExpandCols(n, a[1])
	}},
}

var binaryOps = map[string]binaryOp{
	"add":        {help: "element-wise sum", run: (*matrix.Matrix).Add},
	"subtract":   {help: "element-wise difference", run: (*matrix.Matrix).Subtract},
	"multiply":   {help: "matrix product", run: (*matrix.Matrix).Multiply},
	"hadamard":   {help: "element-wise product", run: (*matrix.Matrix).Hadamard},
	"merge-rows": {help: "place the second matrix to the right", run: (*matrix.Matrix).MergeRows},
	"merge-cols": {help: "place the second matrix below", run: (*matrix.Matrix).MergeCols},
}

// lookupUnary resolves name and checks the argument count.
func lookupUnary(name string, args []float64) (unaryOp, error) {
	op, ok := unaryOps[name]
	if !ok {
		return unaryOp{}, fmt.Errorf("%w %q (see --help)", errUnknownOp, name)
	}
	if len(args) != op.args {
		return unaryOp{}, fmt.Errorf("%w: %s takes %d, got %d", errArgCount, name, op.args, len(args))
	}

	return op, nil
}

func lookupBinary(name string) (binaryOp, error) {
	op, ok := binaryOps[name]
	if !ok {
		return binaryOp{}, fmt.Errorf("%w %q (see --help)", errUnknownOp, name)
	}

	return op, nil
}

// opHelp lists name and help for every entry, sorted by name.
func opHelp[T any](ops map[string]T, help func(T) string) string {
	names := make([]string, 0, len(ops))
	for n := range ops {
		names = append(names, n)
	}
	sort.Strings(names)

	var out string
	for _, n := range names {
		out += fmt.Sprintf("  %-12s %s\n", n, help(ops[n]))
	}

	return out
}
