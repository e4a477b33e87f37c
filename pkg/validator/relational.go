/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"slices"

	"github.com/opengeodata-se/refcheck/pkg/dataset"
)

// lookupBy builds a code -> row lookup for a stage's output. A duplicate key
// overwrites the earlier row; the duplicate itself is already reported by
// the uniqueness check.
func lookupBy(rows []dataset.Row, col string) map[string]dataset.Row {
	m := make(map[string]dataset.Row, len(rows))
	for _, row := range rows {
		m[row[col]] = row
	}
	return m
}

// checkForeignKey requires every value in col to be a key of ref. Missing
// values are collected as a distinct set, not per row.
func (r *fileRun) checkForeignKey(rows []dataset.Row, col string, ref map[string]dataset.Row, refName string) {
	missing := make(map[string]struct{})
	for _, row := range rows {
		if _, ok := ref[row[col]]; !ok {
			missing[row[col]] = struct{}{}
		}
	}
	vals := make([]string, 0, len(missing))
	for v := range missing {
		vals = append(vals, v)
	}
	slices.Sort(vals)
	r.check(fmt.Sprintf("FK %s -> %s", col, refName),
		len(missing) == 0,
		fmt.Sprintf("missing: %v", preview(vals, 10)))
}

// checkCountyPrefix requires the first two characters of municipality_code
// to equal county_code. String comparison, not numeric.
func (r *fileRun) checkCountyPrefix(rows []dataset.Row) {
	var bad []string
	for i, row := range rows {
		mc := row[dataset.ColMunicipalityCode]
		cc := row[dataset.ColCountyCode]
		prefix := mc
		if len(mc) > 2 {
			prefix = mc[:2]
		}
		if prefix != cc {
			bad = append(bad, fmt.Sprintf("line %d: %s vs %s", i+2, mc, cc))
		}
	}
	r.check("municipality_code[:2] == county_code",
		len(bad) == 0,
		fmt.Sprintf("mismatches: %v", preview(bad, 5)))
}

// checkJoinColumns verifies denormalized copies against their source table:
// for each row whose key in keyCol resolves in ref, every listed column must
// match the referenced row byte for byte. All column mismatches feed one
// shared list reported under a single labeled check.
func (r *fileRun) checkJoinColumns(label string, rows []dataset.Row, keyCol string, ref map[string]dataset.Row, cols []string) {
	var bad []string
	for i, row := range rows {
		refRow, ok := ref[row[keyCol]]
		if !ok {
			// Dangling keys are the FK check's concern.
			continue
		}
		for _, col := range cols {
			if row[col] != refRow[col] {
				bad = append(bad, fmt.Sprintf("line %d: %s %q vs %q", i+2, col, row[col], refRow[col]))
			}
		}
	}
	r.check(label, len(bad) == 0, fmt.Sprintf("mismatches: %v", preview(bad, 5)))
}

// checkPostalNames requires municipality_name on each postal row to equal
// the referenced municipality's name exactly.
func (r *fileRun) checkPostalNames(rows []dataset.Row, municipalities map[string]dataset.Row) {
	var bad []string
	for i, row := range rows {
		refRow, ok := municipalities[row[dataset.ColMunicipalityCode]]
		if !ok {
			continue
		}
		expected := refRow[dataset.ColMunicipalityName]
		if row[dataset.ColMunicipalityName] != expected {
			bad = append(bad, fmt.Sprintf("line %d: %q vs %q", i+2, row[dataset.ColMunicipalityName], expected))
		}
	}
	r.check("municipality_name matches municipalities.csv",
		len(bad) == 0,
		fmt.Sprintf("mismatches: %v", preview(bad, 5)))
}
