// SPDX-License-Identifier: MIT

// Package cmd provides the CLI commands for matrixctl.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/internal/config"
	"github.com/katalvlaran/lvmat/internal/logging"
)

// Flag names shared between definition and override lookup.
const (
	flagConfig         = "config"
	flagLayout         = "layout"
	flagValidateNaNInf = "validate-nan-inf"
	flagWorkers        = "workers"
	flagLogLevel       = "log-level"
	flagLogFormat      = "log-format"
	flagPretty         = "pretty"
)

// app is the state resolved once per invocation and shared by subcommands.
type app struct {
	cfg *config.Config
	log *slog.Logger
}

// rootFlags holds raw persistent flag values before they are merged into config.
type rootFlags struct {
	configPath     string
	layout         string
	validateNaNInf bool
	workers        int
	logLevel       string
	logFormat      string
	pretty         bool
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates the root command for matrixctl.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: logging.Discard()}
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "matrixctl",
		Short: "Dense matrix toolkit over interchangeable storage layouts",
		Long: `matrixctl reads matrices as JSON nested arrays and applies
arithmetic, structural, statistical and linear-algebra operations.

Every command runs identically on the nested, flat and optimized layouts;
pick one with --layout or the "layout" key of the config file.`,
		SilenceUsage: true,
	}

	defaults := config.Default()
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, flagConfig, "", "Path to a YAML config file")
	pf.StringVar(&f.layout, flagLayout, defaults.Layout, "Storage layout: nested, flat or optimized")
	pf.BoolVar(&f.validateNaNInf, flagValidateNaNInf, false, "Reject NaN and ±Inf in input matrices")
	pf.IntVar(&f.workers, flagWorkers, defaults.Workers, "Maximum number of inputs processed concurrently")
	pf.StringVar(&f.logLevel, flagLogLevel, defaults.Log.Level, "Log level: debug, info, warn or error")
	pf.StringVar(&f.logFormat, flagLogFormat, defaults.Log.Format, "Log format: text or json")
	pf.BoolVar(&f.pretty, flagPretty, false, "Print matrices row by row instead of JSON lines")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		return a.setup(c, &f)
	}

	cmd.AddCommand(newEvalCmd(a))
	cmd.AddCommand(newCombineCmd(a))
	cmd.AddCommand(newLayoutsCmd())

	return cmd
}

// setup loads the config file, applies explicitly set flags over it and
// builds the logger.
func (a *app) setup(c *cobra.Command, f *rootFlags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}

	flags := c.Flags()
	if flags.Changed(flagLayout) {
		cfg.Layout = f.layout
	}
	if flags.Changed(flagValidateNaNInf) {
		cfg.ValidateNaNInf = f.validateNaNInf
	}
	if flags.Changed(flagWorkers) {
		cfg.Workers = f.workers
	}
	if flags.Changed(flagLogLevel) {
		cfg.Log.Level = f.logLevel
	}
	if flags.Changed(flagLogFormat) {
		cfg.Log.Format = f.logFormat
	}
	if flags.Changed(flagPretty) {
		pretty := f.pretty
		cfg.Output.Pretty = &pretty
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	a.cfg = cfg
	a.log = logging.New(c.ErrOrStderr(), cfg.Logging())
	a.log.Debug("configuration resolved",
		slog.String("config", f.configPath),
		slog.String("layout", cfg.Layout),
		slog.Int("workers", cfg.Workers),
		slog.Bool("validate_nan_inf", cfg.ValidateNaNInf))

	return nil
}

// pretty reports whether results written to w use the row-per-line form.
func (a *app) pretty(w io.Writer) bool {
	return a.cfg.PrettyOutput(isTTY(w))
}

// isTTY checks if output is a terminal.
func isTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}
