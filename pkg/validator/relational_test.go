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

func TestLookupByLastRowWins(t *testing.T) {
	rows := []dataset.Row{
		{dataset.ColCountyCode: "01", dataset.ColCountyName: "first"},
		{dataset.ColCountyCode: "01", dataset.ColCountyName: "second"},
	}
	m := lookupBy(rows, dataset.ColCountyCode)
	assert.Len(t, m, 1)
	assert.Equal(t, "second", m["01"][dataset.ColCountyName])
}

func TestCheckForeignKey(t *testing.T) {
	counties := map[string]dataset.Row{
		"01": {dataset.ColCountyCode: "01"},
		"14": {dataset.ColCountyCode: "14"},
	}

	r := newTestRun()
	rows := []dataset.Row{
		{dataset.ColCountyCode: "01"},
		{dataset.ColCountyCode: "14"},
	}
	r.checkForeignKey(rows, dataset.ColCountyCode, counties, "counties.csv")
	res := lastCheck(t, r)
	assert.Equal(t, CheckStatusPassed, res.Status)
	assert.Equal(t, "FK county_code -> counties.csv", res.Name)
}

func TestCheckForeignKeyMissingValuesSortedAndDistinct(t *testing.T) {
	counties := map[string]dataset.Row{"01": {}}

	r := newTestRun()
	rows := []dataset.Row{
		{dataset.ColCountyCode: "99"},
		{dataset.ColCountyCode: "03"},
		{dataset.ColCountyCode: "99"}, // repeated, reported once
		{dataset.ColCountyCode: "01"},
	}
	r.checkForeignKey(rows, dataset.ColCountyCode, counties, "counties.csv")

	res := lastCheck(t, r)
	assert.Equal(t, CheckStatusFailed, res.Status)
	assert.Equal(t, "missing: [03 99]", res.Detail)
}

func TestCheckCountyPrefix(t *testing.T) {
	tests := []struct {
		name         string
		municipality string
		county       string
		want         CheckStatus
	}{
		{"matching prefix", "0180", "01", CheckStatusPassed},
		{"wrong county", "0180", "02", CheckStatusFailed},
		{"short municipality code", "7", "07", CheckStatusFailed},
		{"exact two chars", "01", "01", CheckStatusPassed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRun()
			rows := []dataset.Row{{
				dataset.ColMunicipalityCode: tt.municipality,
				dataset.ColCountyCode:       tt.county,
			}}
			r.checkCountyPrefix(rows)
			res := lastCheck(t, r)
			assert.Equal(t, tt.want, res.Status)
			if tt.want == CheckStatusFailed {
				assert.Contains(t, res.Detail,
					fmt.Sprintf("%s vs %s", tt.municipality, tt.county))
			}
		})
	}
}

func TestCheckJoinColumnsReportsBothValues(t *testing.T) {
	counties := map[string]dataset.Row{
		"01": {
			dataset.ColCountyCode:      "01",
			dataset.ColCountyName:      "Stockholms län",
			dataset.ColCountyNameShort: "Stockholm",
		},
	}

	r := newTestRun()
	rows := []dataset.Row{{
		dataset.ColCountyCode:      "01",
		dataset.ColCountyName:      "Stockholm län", // one character off
		dataset.ColCountyNameShort: "Stockholm",
	}}
	r.checkJoinColumns("Join consistency (county columns match counties.csv)",
		rows, dataset.ColCountyCode, counties,
		[]string{dataset.ColCountyName, dataset.ColCountyNameShort})

	res := lastCheck(t, r)
	assert.Equal(t, CheckStatusFailed, res.Status)
	assert.Contains(t, res.Detail, `"Stockholm län"`)
	assert.Contains(t, res.Detail, `"Stockholms län"`)
}

func TestCheckJoinColumnsBothMismatchesShareOneCheck(t *testing.T) {
	counties := map[string]dataset.Row{
		"01": {
			dataset.ColCountyName:      "Stockholms län",
			dataset.ColCountyNameShort: "Stockholm",
		},
	}

	r := newTestRun()
	rows := []dataset.Row{{
		dataset.ColCountyCode:      "01",
		dataset.ColCountyName:      "wrong",
		dataset.ColCountyNameShort: "also wrong",
	}}
	r.checkJoinColumns("Join consistency (county columns match counties.csv)",
		rows, dataset.ColCountyCode, counties,
		[]string{dataset.ColCountyName, dataset.ColCountyNameShort})

	// Two column mismatches, one recorded check.
	assert.Len(t, r.file.Checks, 1)
	res := lastCheck(t, r)
	assert.Contains(t, res.Detail, "county_name")
	assert.Contains(t, res.Detail, "county_name_short")
}

func TestCheckJoinColumnsSkipsDanglingKeys(t *testing.T) {
	r := newTestRun()
	rows := []dataset.Row{{
		dataset.ColCountyCode: "99", // FK check's concern, not this one's
		dataset.ColCountyName: "whatever",
	}}
	r.checkJoinColumns("Join consistency (county columns match counties.csv)",
		rows, dataset.ColCountyCode, map[string]dataset.Row{},
		[]string{dataset.ColCountyName})

	assert.Equal(t, CheckStatusPassed, lastCheck(t, r).Status)
}

func TestCheckPostalNames(t *testing.T) {
	municipalities := map[string]dataset.Row{
		"0180": {dataset.ColMunicipalityName: "Stockholms kommun"},
	}

	r := newTestRun()
	rows := []dataset.Row{{
		dataset.ColMunicipalityCode: "0180",
		dataset.ColMunicipalityName: "Stockholms kommun",
	}}
	r.checkPostalNames(rows, municipalities)
	assert.Equal(t, CheckStatusPassed, lastCheck(t, r).Status)

	rows = []dataset.Row{{
		dataset.ColMunicipalityCode: "0180",
		dataset.ColMunicipalityName: "Stockholm",
	}}
	r.checkPostalNames(rows, municipalities)
	res := lastCheck(t, r)
	assert.Equal(t, CheckStatusFailed, res.Status)
	assert.Contains(t, res.Detail, `"Stockholm" vs "Stockholms kommun"`)
}

func TestCheckPostalNamesSkipsUnknownMunicipality(t *testing.T) {
	r := newTestRun()
	rows := []dataset.Row{{
		dataset.ColMunicipalityCode: "9999",
		dataset.ColMunicipalityName: "anything",
	}}
	r.checkPostalNames(rows, map[string]dataset.Row{})
	assert.Equal(t, CheckStatusPassed, lastCheck(t, r).Status)
}
