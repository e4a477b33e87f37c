/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

// Package validator runs the check battery over the Swedish geodata
// reference CSV files.
//
// # Overview
//
// A validation run is a linear battery of independent assertions over four
// in-memory tables: counties, municipalities, the denormalized
// municipality-county join, and the postal-code mapping. Checks are grouped
// by concern:
//
//   - structural: encoding (no BOM), LF-only line endings, exact header,
//     no trailing commas, no empty rows
//   - field format: fixed-width zero-padded codes, key uniqueness, fixed
//     row counts, NFC-normalized names
//   - relational: foreign keys, municipality/county code prefix agreement,
//     and byte-for-byte join consistency of denormalized name columns
//
// Stages run in dependency order; each stage hands its code lookup to the
// later ones. Every check is non-fatal: a failure is recorded and the run
// continues, so one pass reports everything wrong with the data. Only
// environment failures (missing file, invalid UTF-8) abort the run.
//
// # Usage
//
//	v := validator.New(
//	    validator.WithDataDir("data"),
//	    validator.WithVersion(version),
//	)
//	report, err := v.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if report.Summary.Failed > 0 {
//	    os.Exit(1)
//	}
//
// The textual report is streamed to the configured output as checks run;
// the returned Report carries the same results in structured form for JSON
// or YAML serialization.
package validator
