// SPDX-License-Identifier: MIT

// Package logging builds the structured slog.Logger used by matrixctl.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Format selects the handler: "text" or "json".
	Format string
}

// DefaultConfig returns info-level text logging.
func DefaultConfig() Config {
	return Config{Level: "info", Format: FormatText}
}

// New returns a logger writing to w. Unknown levels fall back to info,
// unknown formats to text.
func New(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, FormatJSON) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 4}))
}

// ValidLevel reports whether level names a known slog level.
func ValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}

// ValidFormat reports whether format names a known handler.
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
