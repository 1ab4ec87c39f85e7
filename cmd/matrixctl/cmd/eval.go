// SPDX-License-Identifier: MIT
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		opName string
		args   []float64
	)

	cmd := &cobra.Command{
		Use:   "eval --op NAME [--arg V ...] [FILE|- ...]",
		Short: "Apply one operation to each input matrix",
		Long: `Apply one operation to every input matrix. Inputs are JSON nested
arrays read from files, or from standard input when no file (or "-") is given.
Inputs are processed concurrently; results are printed in argument order.

Operations:
` + opHelp(unaryOps, func(o unaryOp) string { return o.help }),
		RunE: func(cmd *cobra.Command, files []string) error {
			op, err := lookupUnary(opName, args)
			if err != nil {
				return err
			}
			sources, err := checkSources(files)
			if err != nil {
				return err
			}

			recs, err := a.evalAll(cmd.Context(), cmd, op, sources, args)
			if err != nil {
				return err
			}
			a.log.Info("eval complete", slog.String("op", opName), slog.Int("inputs", len(recs)))

			return a.writeRecords(cmd.OutOrStdout(), recs)
		},
	}

	cmd.Flags().StringVar(&opName, "op", "", "Operation name (required)")
	cmd.Flags().Float64SliceVar(&args, "arg", nil, "Numeric operation argument (repeatable)")
	_ = cmd.MarkFlagRequired("op")

	return cmd
}

// evalAll loads and evaluates every source under the worker bound.
func (a *app) evalAll(ctx context.Context, cmd *cobra.Command, op unaryOp, sources []string, args []float64) ([]record, error) {
	recs := make([]record, len(sources))
	err := a.parallel(ctx, len(sources), func(_ context.Context, i int) error {
		start := time.Now()
		m, err := a.readMatrix(cmd.InOrStdin(), sources[i])
		if err != nil {
			return err
		}
		res, err := op.run(m, args)
		if err != nil {
			return fmt.Errorf("%s: %w", sources[i], err)
		}
		recs[i] = record{Source: sources[i], Result: res}
		a.log.Debug("evaluated",
			slog.String("source", sources[i]),
			slog.Duration("elapsed", time.Since(start)))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return recs, nil
}
