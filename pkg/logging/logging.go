/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

// Package logging configures the process-wide structured logger.
package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// SetDefaultStructuredLogger installs a slog text handler on stderr at the
// given level, tagging every record with the tool name and version. Log
// output goes to stderr so the validation report on stdout stays clean.
func SetDefaultStructuredLogger(name, version string, level slog.Level) {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(h).With(
		slog.String("name", name),
		slog.String("version", version),
	)
	slog.SetDefault(logger)
}

// ParseLevel parses a textual log level (debug, info, warn, error).
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
