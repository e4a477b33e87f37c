/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/opengeodata-se/refcheck/pkg/serializer"
	"github.com/opengeodata-se/refcheck/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Run the full check battery against the reference CSV files",
		Description: `Runs every structural, field-format and relational check over the four
reference files (counties.csv, municipalities.csv, municipality_county.csv,
postal_to_municipality.csv) and prints a per-file report.

Checks never abort the run: one pass reports everything wrong with the data.
The exit code is the machine-readable result: 0 when every check passed,
1 when any failed.

# Examples

Validate the data directory in the working tree:
  refcheck validate

Validate another checkout and keep a JSON report:
  refcheck validate --data /srv/geodata/data --format json --output report.json

Skip the row-count checks while a dataset update is in flight:
  refcheck validate --skip "Row count*"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Value:   "data",
				Usage:   "Directory containing the reference CSV files",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Report format (text, json, yaml)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "",
				Usage:   "Report output path for json/yaml (default: stdout)",
			},
			&cli.StringSliceFlag{
				Name:  "skip",
				Usage: "Skip checks whose name matches the pattern (supports * wildcards, can be repeated)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q, valid formats are: text, json, yaml", outFormat)
			}

			// The streamed text report owns stdout; in json/yaml mode the
			// structured document does instead.
			textOut := io.Writer(os.Stdout)
			if outFormat != serializer.FormatText {
				textOut = io.Discard
			}

			v := validator.New(
				validator.WithDataDir(cmd.String("data")),
				validator.WithVersion(version),
				validator.WithOutput(textOut),
				validator.WithSkipPatterns(cmd.StringSlice("skip")),
			)

			report, err := v.Run(ctx)
			if err != nil {
				slog.Error("validation aborted", "error", err)
				return err
			}

			if outFormat != serializer.FormatText {
				w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
				if err := w.Serialize(ctx, report); err != nil {
					return err
				}
			}

			if report.Summary.Failed > 0 {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}
