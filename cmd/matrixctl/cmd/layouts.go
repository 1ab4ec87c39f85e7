// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/matrix"
)

var layoutHelp = map[matrix.Layout]string{
	matrix.LayoutNested:    "one slice per row",
	matrix.LayoutFlat:      "single row-major buffer (default)",
	matrix.LayoutOptimized: "row-major buffer with linear-pass kernels",
}

func newLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the available storage layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, l := range matrix.Layouts {
				if _, err := fmt.Fprintf(w, "%-10s %s\n", l, layoutHelp[l]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
