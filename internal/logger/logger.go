/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the process-wide logger. It writes human-readable
// lines to stderr and can be silenced when output goes to stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var (
	output io.Writer = os.Stderr
	level            = zerolog.InfoLevel
	logger           = build()
)

func build() zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:          output,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(console).Level(level)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	output = w
	logger = build()
}

// SetLevel sets the minimum level (debug, info, warn, error).
func SetLevel(name string) error {
	parsed, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	level = parsed
	logger = build()
	return nil
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Info().Msgf(format, args...)
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	logger.Debug().Msgf(format, args...)
}

// Error logs err with a message.
func Error(err error, format string, args ...any) {
	logger.Error().Err(err).Msgf(format, args...)
}
