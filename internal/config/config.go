// SPDX-License-Identifier: MIT

// Package config loads matrixctl settings from YAML.
//
// Resolution order: built-in defaults, then the YAML file (when given),
// then command-line flags applied by the caller. Validate runs last.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmat/internal/logging"
	"github.com/katalvlaran/lvmat/matrix"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the full matrixctl configuration.
type Config struct {
	// Layout names the storage backend (nested, flat, optimized).
	Layout string `yaml:"layout"`
	// ValidateNaNInf rejects non-finite input values.
	ValidateNaNInf bool `yaml:"validate_nan_inf"`
	// Workers bounds how many input files are processed concurrently.
	Workers int          `yaml:"workers"`
	Log     LogConfig    `yaml:"log"`
	Output  OutputConfig `yaml:"output"`
}

// LogConfig mirrors logging.Config.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	// Pretty forces row-per-line text output. Unset means: pretty on a terminal.
	Pretty *bool `yaml:"pretty,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Layout:  matrix.DefaultLayout.String(),
		Workers: runtime.GOMAXPROCS(0),
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
	}
}

// Load returns defaults merged with the YAML file at path.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadYAML decodes path over c; keys absent from the file keep their value.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := matrix.ParseLayout(c.Layout); err != nil {
		return fmt.Errorf("%w: layout: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: log.level must be 'debug', 'info', 'warn', or 'error', got %s", ErrInvalidConfig, c.Log.Level)
	}
	if !logging.ValidFormat(c.Log.Format) {
		return fmt.Errorf("%w: log.format must be 'text' or 'json', got %s", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// MatrixOptions converts the matrix-related fields into construction options.
// Call after Validate.
func (c *Config) MatrixOptions() []matrix.Option {
	l, err := matrix.ParseLayout(c.Layout)
	if err != nil {
		l = matrix.DefaultLayout
	}
	opts := []matrix.Option{matrix.WithLayout(l)}
	if c.ValidateNaNInf {
		opts = append(opts, matrix.WithValidateNaNInf())
	}

	return opts
}

// Logging converts the log section.
func (c *Config) Logging() logging.Config {
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format}
}

// PrettyOutput resolves output.pretty, using isTerminal when unset.
func (c *Config) PrettyOutput(isTerminal bool) bool {
	if c.Output.Pretty != nil {
		return *c.Output.Pretty
	}

	return isTerminal
}

// WriteYAML writes the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
