/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/opengeodata-se/refcheck/pkg/dataset"
)

// preview returns at most n elements of s for a failure diagnostic.
func preview[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// isDigits reports whether s is non-empty and all ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// checkCodeFormat requires every value in col to be exactly length ASCII
// digits. Codes are zero-padded strings; they are never parsed as integers.
func (r *fileRun) checkCodeFormat(rows []dataset.Row, col string, length int) {
	var bad []string
	for i, row := range rows {
		val := row[col]
		if len(val) != length || !isDigits(val) {
			bad = append(bad, fmt.Sprintf("line %d: %q", i+2, val))
		}
	}
	r.check(fmt.Sprintf("%s format (%d-digit zero-padded)", col, length),
		len(bad) == 0,
		fmt.Sprintf("invalid: %v", preview(bad, 5)))
}

// checkNoDuplicates requires every value in col to be unique. Each later
// occurrence is reported against the first-seen line.
func (r *fileRun) checkNoDuplicates(rows []dataset.Row, col string) {
	seen := make(map[string]int, len(rows))
	var dupes []string
	for i, row := range rows {
		val := row[col]
		line := i + 2
		if first, ok := seen[val]; ok {
			dupes = append(dupes, fmt.Sprintf("%s (lines %d and %d)", val, first, line))
		} else {
			seen[val] = line
		}
	}
	r.check(fmt.Sprintf("No duplicate %s", col),
		len(dupes) == 0,
		fmt.Sprintf("duplicates: %v", preview(dupes, 5)))
}

// checkRowCount requires the data row count to equal the fixed expectation.
func (r *fileRun) checkRowCount(rows []dataset.Row, expected int) {
	r.check(fmt.Sprintf("Row count = %d", expected),
		len(rows) == expected,
		fmt.Sprintf("got %d", len(rows)))
}

// checkNFCNames requires free-text name columns to already be in Unicode
// NFC form. Decomposed å/ä/ö sneak in from some editing tools and would
// break byte-for-byte join comparisons downstream.
func (r *fileRun) checkNFCNames(rows []dataset.Row, cols []string) {
	var bad []string
	for i, row := range rows {
		for _, col := range cols {
			if !norm.NFC.IsNormalString(row[col]) {
				bad = append(bad, fmt.Sprintf("line %d: %s %q", i+2, col, row[col]))
			}
		}
	}
	r.check("Names in NFC form",
		len(bad) == 0,
		fmt.Sprintf("not NFC-normalized: %v", preview(bad, 5)))
}
