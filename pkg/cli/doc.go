/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for the refcheck tool.
//
// # Overview
//
// refcheck validates the published Swedish geodata reference CSVs: the
// county and municipality registers, the denormalized municipality-county
// join, and the postal-code-to-municipality mapping. It is run from the
// repository root of the data checkout, typically in CI on every change to
// the data files.
//
// # Commands
//
// validate - run the check battery (default command):
//
//	refcheck validate [--data DIR] [--format text|json|yaml] [--output FILE] [--skip PATTERN]
//
// Prints a per-file report with one line per check and a trailing summary.
// Exit code 0 means every check passed; 1 means at least one failed or the
// run aborted on an environment failure.
//
// serve - expose validation over HTTP:
//
//	refcheck serve [--data DIR] [--port PORT]
//
// Serves /v1/validate (JSON report), /health, /ready and /metrics.
package cli
