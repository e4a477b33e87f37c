/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/opengeodata-se/refcheck/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve validation runs over HTTP",
		Description: `Starts an HTTP server exposing the check battery:

  GET /v1/validate  run the battery, return the JSON report
                    (200 all checks passed, 422 failures found)
  GET /health       liveness probe
  GET /ready        readiness probe
  GET /metrics      Prometheus metrics

Intended for CI systems and dashboards that poll the health of the
reference data.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Value:   "data",
				Usage:   "Directory containing the reference CSV files",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   8080,
				Usage:   "Port to listen on (PORT env var also honored)",
			},
			&cli.StringSliceFlag{
				Name:  "skip",
				Usage: "Skip checks whose name matches the pattern (supports * wildcards, can be repeated)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.DefaultConfig()
			if cmd.IsSet("port") {
				cfg.Port = int(cmd.Int("port"))
			}
			if cmd.IsSet("data") {
				cfg.DataDir = cmd.String("data")
			}
			cfg.SkipPatterns = cmd.StringSlice("skip")

			s := server.New(
				server.WithName(name),
				server.WithVersion(version),
				server.WithConfig(cfg),
			)
			return s.Run(ctx)
		},
	}
}
