// ============================================================================
// findpay - Payment filter command parsing
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating application loggers
// Author:      Mike Stoffels
// Created:     2025-10-17
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/findpay/foundation/core/log"
	"github.com/msto63/findpay/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format
	Format string // "json" or "text" (default: text)

	// Primary output (default: stderr)
	Output io.Writer

	// Additional outputs besides the primary one
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// FromConfig derives the logger configuration from the application config.
// verbose forces debug level.
func FromConfig(cfg *config.Config, verbose bool) LoggerConfig {
	lc := DefaultLoggerConfig(cfg.General.Name)
	lc.Level = cfg.General.LogLevel
	lc.Format = cfg.General.LogFormat
	if verbose {
		lc.Level = "debug"
	}
	return lc
}

// NewLogger creates a foundation logger. Unknown levels fall back to info
// and unknown formats to text.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.DefaultLevel()
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
}

// NewRequestID returns a fresh identifier for correlating the log entries of
// one invocation
func NewRequestID() string {
	return uuid.NewString()
}

// NewRequestLogger returns logger bound to a fresh request ID, and that ID
func NewRequestLogger(logger *mdwlog.Logger) (*mdwlog.Logger, string) {
	id := NewRequestID()
	return logger.WithRequestID(id), id
}
