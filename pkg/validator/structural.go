/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// checkNoBOM fails when the raw file bytes begin with the UTF-8 byte-order
// mark.
func (r *fileRun) checkNoBOM(raw []byte) {
	r.check("UTF-8, no BOM",
		!bytes.HasPrefix(raw, utf8BOM),
		"file starts with UTF-8 BOM")
}

// checkLineEndings fails when any carriage return is present, whether as
// part of a CRLF pair or bare.
func (r *fileRun) checkLineEndings(raw []byte) {
	r.check("LF line endings",
		!bytes.ContainsRune(raw, '\r'),
		"found CR or CRLF line endings")
}

// checkHeader requires the parsed header to equal the expected column list
// exactly, in order. On mismatch the diagnostic names the first offending
// column with the closest expected name.
func (r *fileRun) checkHeader(got, want []string) {
	ok := slices.Equal(got, want)
	detail := ""
	if !ok {
		detail = fmt.Sprintf("got %v", got)
		if hint := headerHint(got, want); hint != "" {
			detail += "; " + hint
		}
	}
	r.check("Correct header", ok, detail)
}

// headerHint describes the first position where got diverges from want,
// suggesting the nearest expected column by edit distance for likely typos.
func headerHint(got, want []string) string {
	for i, col := range got {
		if i >= len(want) {
			return fmt.Sprintf("unexpected extra column %q", col)
		}
		if col == want[i] {
			continue
		}
		best, bestDist := want[i], levenshtein.ComputeDistance(col, want[i])
		for _, w := range want {
			if d := levenshtein.ComputeDistance(col, w); d < bestDist {
				best, bestDist = w, d
			}
		}
		if bestDist > 0 && bestDist <= 3 {
			return fmt.Sprintf("column %d is %q, did you mean %q?", i+1, col, best)
		}
		return fmt.Sprintf("column %d is %q, expected %q", i+1, col, want[i])
	}
	if len(got) < len(want) {
		return fmt.Sprintf("missing column %q", want[len(got)])
	}
	return ""
}

// checkNoTrailingCommas flags text lines ending with a comma. This is a raw
// string check, not a CSV-aware one: a genuinely quoted field ending in a
// comma is still flagged, which is the check's intent (catching rows written
// with a dangling separator).
func (r *fileRun) checkNoTrailingCommas(text string) {
	var bad []int
	for i, line := range strings.Split(text, "\n") {
		if strings.HasSuffix(line, ",") {
			bad = append(bad, i+1)
		}
	}
	r.check("No trailing commas",
		len(bad) == 0,
		fmt.Sprintf("trailing commas on lines: %v", preview(bad, 5)))
}

// checkNoEmptyRows flags data lines that are empty or consist only of
// commas. This works on raw lines because the CSV parser silently drops
// fully blank lines, which would otherwise go undetected.
func (r *fileRun) checkNoEmptyRows(text string) {
	var empty []int
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		if i == len(lines)-1 && lines[i] == "" {
			// Trailing newline, not a row.
			continue
		}
		if strings.Trim(lines[i], ",") == "" {
			empty = append(empty, i+1)
		}
	}
	r.check("No empty rows",
		len(empty) == 0,
		fmt.Sprintf("empty rows at lines: %v", preview(empty, 5)))
}
