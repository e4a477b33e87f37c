/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/opengeodata-se/refcheck/pkg/logging"
)

const (
	name           = "refcheck"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/opengeodata-se/refcheck/pkg/cli.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// New returns the root refcheck command.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Validate the Swedish geodata reference CSV files",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "Log level (debug, info, warn, error); logs go to stderr",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := logging.ParseLevel(cmd.String("log-level"))
			if err != nil {
				return ctx, err
			}
			logging.SetDefaultStructuredLogger(name, version, level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			validateCmd(),
			serveCmd(),
		},
		DefaultCommand: "validate",
	}
}
