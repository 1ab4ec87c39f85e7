// SPDX-License-Identifier: MIT
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/matrix"
)

func newCombineCmd(a *app) *cobra.Command {
	var opName string

	cmd := &cobra.Command{
		Use:   "combine --op NAME LEFT RIGHT",
		Short: "Combine two matrices",
		Long: `Combine two JSON matrices. Either operand may be "-" for standard input.

Operations:
` + opHelp(binaryOps, func(o binaryOp) string { return o.help }),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, files []string) error {
			op, err := lookupBinary(opName)
			if err != nil {
				return err
			}
			if _, err := checkSources(files); err != nil {
				return err
			}

			operands := make([]*matrix.Matrix, len(files))
			err = a.parallel(cmd.Context(), len(files), func(_ context.Context, i int) error {
				m, err := a.readMatrix(cmd.InOrStdin(), files[i])
				operands[i] = m
				return err
			})
			if err != nil {
				return err
			}

			res, err := op.run(operands[0], operands[1])
			if err != nil {
				return fmt.Errorf("%s: %w", opName, err)
			}
			a.log.Info("combine complete",
				slog.String("op", opName),
				slog.Int("rows", res.Rows()),
				slog.Int("cols", res.Cols()))

			return a.writeRecords(cmd.OutOrStdout(), []record{{Source: opName, Result: res}})
		},
	}

	cmd.Flags().StringVar(&opName, "op", "", "Operation name (required)")
	_ = cmd.MarkFlagRequired("op")

	return cmd
}
