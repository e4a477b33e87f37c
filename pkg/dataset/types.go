/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package dataset

// CodeColumn describes a fixed-width, zero-padded, all-digit column.
// Leading zeros are significant, so code values are always handled as
// strings and never parsed as integers.
type CodeColumn struct {
	Name   string
	Length int
}

// Dataset describes one reference CSV file: its location relative to the
// data directory, the exact header it must carry, and the per-file
// constraints the validator enforces against it.
type Dataset struct {
	// Name is a short identifier used in logs and metrics.
	Name string

	// Filename is the file name relative to the data directory.
	Filename string

	// Header is the exact ordered list of column names the file must have.
	Header []string

	// KeyColumn is the primary code column; its values must be unique.
	KeyColumn string

	// CodeColumns lists the fixed-width numeric columns.
	CodeColumns []CodeColumn

	// NameColumns lists the free-text columns checked for NFC form.
	NameColumns []string

	// ExpectedRows is the fixed data row count, or 0 when the file has no
	// fixed expectation.
	ExpectedRows int
}
