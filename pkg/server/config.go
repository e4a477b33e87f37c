/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// Config holds server configuration.
type Config struct {
	// Server configuration
	Address string
	Port    int

	// DataDir is the directory containing the reference CSV files.
	DataDir string

	// SkipPatterns excludes checks by name, same syntax as the CLI --skip.
	SkipPatterns []string

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Logging
	LogLevel string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	cfg := &Config{
		Address:         "",
		Port:            8080,
		DataDir:         "data",
		RateLimit:       100,
		RateLimitBurst:  200,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		LogLevel:        slog.LevelInfo.String(),
	}

	// Override with environment variables if set
	if portStr := os.Getenv("PORT"); portStr != "" {
		var port int
		if _, err := fmt.Sscanf(portStr, "%d", &port); err == nil {
			cfg.Port = port
		}
	}

	if dataDir := os.Getenv("REFCHECK_DATA"); dataDir != "" {
		cfg.DataDir = dataDir
	}

	if logLevelStr := os.Getenv("LOG_LEVEL"); logLevelStr != "" {
		cfg.LogLevel = logLevelStr
	}

	return cfg
}
