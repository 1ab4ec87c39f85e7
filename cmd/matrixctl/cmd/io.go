// SPDX-License-Identifier: MIT
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmat/matrix"
)

// stdinName selects standard input in place of a file path.
const stdinName = "-"

var errStdinTwice = errors.New("standard input ('-') may be given only once")

// record is one line of JSON output.
type record struct {
	Source string `json:"source"`
	Result any    `json:"result"`
}

// parallel calls fn(ctx, i) for i in [0, n) with at most cfg.Workers running
// at once. The first error cancels ctx for the remaining calls.
func (a *app) parallel(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}

	return g.Wait()
}

// checkSources defaults an empty list to stdin and rejects repeated stdin.
func checkSources(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return []string{stdinName}, nil
	}
	seen := false
	for _, p := range paths {
		if p != stdinName {
			continue
		}
		if seen {
			return nil, errStdinTwice
		}
		seen = true
	}

	return paths, nil
}

// readMatrix decodes one JSON nested array from path (or stdin for "-")
// using the configured layout and policy.
func (a *app) readMatrix(stdin io.Reader, path string) (*matrix.Matrix, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinName {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	m, err := matrix.FromJSON(data, a.cfg.MatrixOptions()...)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	a.log.Debug("matrix loaded",
		slog.String("source", path),
		slog.Int("rows", m.Rows()),
		slog.Int("cols", m.Cols()),
		slog.String("layout", m.Layout().String()))

	return m, nil
}

// writeRecords prints records in order, as JSON lines or in pretty form.
func (a *app) writeRecords(w io.Writer, recs []record) error {
	if !a.pretty(w) {
		enc := json.NewEncoder(w)
		for _, r := range recs {
			r.Result = jsonResult(r.Result)
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encode %s: %w", r.Source, err)
			}
		}
		return nil
	}

	var b strings.Builder
	for _, r := range recs {
		if len(recs) > 1 {
			fmt.Fprintf(&b, "# %s\n", r.Source)
		}
		b.WriteString(formatPretty(r.Result))
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// jsonResult rewrites NaN and ±Inf, which JSON numbers cannot carry, as the
// strings "NaN", "+Inf" and "-Inf". Finite values pass through unchanged.
func jsonResult(v any) any {
	switch x := v.(type) {
	case float64:
		return jsonFloat(x)
	case []float64:
		return jsonFloats(x)
	case *matrix.Matrix:
		if x.Every(func(v float64, _ matrix.Index) bool { return isFinite(v) }) {
			return x
		}
		rows := x.ToSlice()
		out := make([][]any, len(rows))
		for i, row := range rows {
			out[i] = jsonFloats(row)
		}
		return out
	default:
		return v
	}
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func jsonFloat(v float64) any {
	if isFinite(v) {
		return v
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

func jsonFloats(vs []float64) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = jsonFloat(v)
	}

	return out
}

// formatPretty renders a result for humans; every form ends with a newline.
func formatPretty(v any) string {
	switch x := v.(type) {
	case *matrix.Matrix:
		if x.Rows() == 0 {
			return "[]\n"
		}
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64) + "\n"
	case bool:
		return strconv.FormatBool(x) + "\n"
	case [2]int:
		return matrix.Index{Row: x[0], Col: x[1]}.String() + "\n"
	default:
		return fmt.Sprintln(v)
	}
}
