/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opengeodata-se/refcheck/pkg/dataset"
)

func TestCheckCodeFormat(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		length int
		want   CheckStatus
	}{
		{"zero-padded two digits", "07", 2, CheckStatusPassed},
		{"too short", "7", 2, CheckStatusFailed},
		{"non-digit", "7X", 2, CheckStatusFailed},
		{"too long", "007", 2, CheckStatusFailed},
		{"empty", "", 2, CheckStatusFailed},
		{"four digits", "0180", 4, CheckStatusPassed},
		{"spaces", " 7", 2, CheckStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRun()
			rows := []dataset.Row{{dataset.ColCountyCode: tt.value}}
			r.checkCodeFormat(rows, dataset.ColCountyCode, tt.length)
			assert.Equal(t, tt.want, lastCheck(t, r).Status)
		})
	}
}

func TestCheckCodeFormatKeepsLeadingZeros(t *testing.T) {
	// Codes are strings: "01" passes as-is, and would keep failing if
	// anything normalized it to "1".
	r := newTestRun()
	rows := []dataset.Row{{dataset.ColCountyCode: "01"}, {dataset.ColCountyCode: "1"}}
	r.checkCodeFormat(rows, dataset.ColCountyCode, 2)

	res := lastCheck(t, r)
	assert.Equal(t, CheckStatusFailed, res.Status)
	assert.Contains(t, res.Detail, `line 3: "1"`)
	assert.NotContains(t, res.Detail, "line 2")
}

func TestCheckCodeFormatReportsLineNumbers(t *testing.T) {
	r := newTestRun()
	rows := []dataset.Row{
		{dataset.ColMunicipalityCode: "0180"},
		{dataset.ColMunicipalityCode: "018"},
	}
	r.checkCodeFormat(rows, dataset.ColMunicipalityCode, 4)

	res := lastCheck(t, r)
	assert.Equal(t, "municipality_code format (4-digit zero-padded)", res.Name)
	assert.Contains(t, res.Detail, `line 3: "018"`)
}

func TestCheckNoDuplicates(t *testing.T) {
	r := newTestRun()
	rows := []dataset.Row{
		{dataset.ColMunicipalityCode: "0180"}, // line 2
		{dataset.ColMunicipalityCode: "0180"}, // line 3
		{dataset.ColMunicipalityCode: "1480"}, // line 4
		{dataset.ColMunicipalityCode: "0180"}, // line 5
	}
	r.checkNoDuplicates(rows, dataset.ColMunicipalityCode)

	res := lastCheck(t, r)
	assert.Equal(t, CheckStatusFailed, res.Status)
	// Every later occurrence reports against the first-seen line.
	assert.Contains(t, res.Detail, "0180 (lines 2 and 3)")
	assert.Contains(t, res.Detail, "0180 (lines 2 and 5)")
}

func TestCheckNoDuplicatesUniqueValues(t *testing.T) {
	r := newTestRun()
	rows := []dataset.Row{
		{dataset.ColCountyCode: "01"},
		{dataset.ColCountyCode: "02"},
	}
	r.checkNoDuplicates(rows, dataset.ColCountyCode)
	assert.Equal(t, CheckStatusPassed, lastCheck(t, r).Status)
}

func TestCheckRowCount(t *testing.T) {
	mkRows := func(n int) []dataset.Row {
		rows := make([]dataset.Row, n)
		for i := range rows {
			rows[i] = dataset.Row{dataset.ColCountyCode: fmt.Sprintf("%02d", i+1)}
		}
		return rows
	}

	r := newTestRun()
	r.checkRowCount(mkRows(21), 21)
	assert.Equal(t, CheckStatusPassed, lastCheck(t, r).Status)

	r.checkRowCount(mkRows(20), 21)
	res := lastCheck(t, r)
	assert.Equal(t, CheckStatusFailed, res.Status)
	assert.Equal(t, "got 20", res.Detail)

	r.checkRowCount(mkRows(22), 21)
	res = lastCheck(t, r)
	assert.Equal(t, CheckStatusFailed, res.Status)
	assert.Equal(t, "got 22", res.Detail)
}

func TestCheckNFCNames(t *testing.T) {
	r := newTestRun()
	rows := []dataset.Row{{dataset.ColCountyName: "Gävleborgs län"}}
	r.checkNFCNames(rows, []string{dataset.ColCountyName})
	assert.Equal(t, CheckStatusPassed, lastCheck(t, r).Status)

	// "a" followed by combining diaeresis: same glyph, different bytes.
	rows = []dataset.Row{{dataset.ColCountyName: "Ga\u0308vleborgs la\u0308n"}}
	r.checkNFCNames(rows, []string{dataset.ColCountyName})
	res := lastCheck(t, r)
	assert.Equal(t, CheckStatusFailed, res.Status)
	assert.Contains(t, res.Detail, "county_name")
}

func TestPreviewCapsDiagnostics(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7}
	assert.Len(t, preview(s, 5), 5)
	assert.Len(t, preview(s[:3], 5), 3)
	assert.Empty(t, preview([]int(nil), 5))
}
