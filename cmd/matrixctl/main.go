// SPDX-License-Identifier: MIT

// Package main provides the entry point for the matrixctl CLI.
package main

import (
	"os"

	"github.com/katalvlaran/lvmat/cmd/matrixctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
