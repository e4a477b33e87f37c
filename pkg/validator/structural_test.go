/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRun returns a fileRun with discarded text output for exercising
// individual checks.
func newTestRun() *fileRun {
	return &fileRun{
		v:    New(WithOutput(io.Discard)),
		file: FileResult{File: "test.csv"},
	}
}

func lastCheck(t *testing.T, r *fileRun) CheckResult {
	t.Helper()
	require.NotEmpty(t, r.file.Checks)
	return r.file.Checks[len(r.file.Checks)-1]
}

func TestCheckNoBOM(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want CheckStatus
	}{
		{"no BOM", []byte("county_code\n01\n"), CheckStatusPassed},
		{"leading BOM", []byte{0xEF, 0xBB, 0xBF, 'a', '\n'}, CheckStatusFailed},
		{"BOM bytes mid-file are fine", append([]byte("a\n"), 0xEF, 0xBB, 0xBF), CheckStatusPassed},
		{"empty file", nil, CheckStatusPassed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRun()
			r.checkNoBOM(tt.raw)
			assert.Equal(t, tt.want, lastCheck(t, r).Status)
		})
	}
}

func TestCheckLineEndings(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want CheckStatus
	}{
		{"LF only", []byte("a,b\nc,d\n"), CheckStatusPassed},
		{"CRLF", []byte("a,b\r\nc,d\r\n"), CheckStatusFailed},
		{"bare CR", []byte("a,b\rc,d\n"), CheckStatusFailed},
		{"single trailing CR", []byte("a,b\n\r"), CheckStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRun()
			r.checkLineEndings(tt.raw)
			assert.Equal(t, tt.want, lastCheck(t, r).Status)
		})
	}
}

func TestCheckHeader(t *testing.T) {
	r := newTestRun()
	r.checkHeader([]string{"a", "b"}, []string{"a", "b"})
	assert.Equal(t, CheckStatusPassed, lastCheck(t, r).Status)

	r.checkHeader([]string{"a", "b"}, []string{"a", "c"})
	res := lastCheck(t, r)
	assert.Equal(t, CheckStatusFailed, res.Status)
	assert.Contains(t, res.Detail, "got [a b]")
}

func TestCheckHeaderSuggestsClosestColumn(t *testing.T) {
	r := newTestRun()
	r.checkHeader(
		[]string{"county_code", "county_nme", "county_name_short"},
		[]string{"county_code", "county_name", "county_name_short"})

	res := lastCheck(t, r)
	assert.Equal(t, CheckStatusFailed, res.Status)
	assert.Contains(t, res.Detail, `did you mean "county_name"`)
}

func TestCheckHeaderMissingAndExtraColumns(t *testing.T) {
	r := newTestRun()
	r.checkHeader([]string{"a"}, []string{"a", "b"})
	assert.Contains(t, lastCheck(t, r).Detail, `missing column "b"`)

	r.checkHeader([]string{"a", "b", "c"}, []string{"a", "b"})
	assert.Contains(t, lastCheck(t, r).Detail, `unexpected extra column "c"`)
}

func TestCheckNoTrailingCommas(t *testing.T) {
	r := newTestRun()
	r.checkNoTrailingCommas("a,b\nc,d\n")
	assert.Equal(t, CheckStatusPassed, lastCheck(t, r).Status)

	r.checkNoTrailingCommas("a,b\nc,d,\n")
	res := lastCheck(t, r)
	assert.Equal(t, CheckStatusFailed, res.Status)
	assert.Contains(t, res.Detail, "[2]")
}

func TestCheckNoTrailingCommasIsNotCSVAware(t *testing.T) {
	// A raw string check by design: a legitimately empty final field still
	// counts as a trailing comma.
	r := newTestRun()
	r.checkNoTrailingCommas("a,b\nvalue,\n")
	assert.Equal(t, CheckStatusFailed, lastCheck(t, r).Status)
}

func TestCheckNoEmptyRows(t *testing.T) {
	tests := []struct {
		name string
		text string
		want CheckStatus
	}{
		{"clean", "h1,h2\na,b\nc,d\n", CheckStatusPassed},
		{"blank line", "h1,h2\na,b\n\nc,d\n", CheckStatusFailed},
		{"commas only", "h1,h2\n,,\nc,d\n", CheckStatusFailed},
		{"trailing newline is not a row", "h1,h2\na,b\n", CheckStatusPassed},
		{"no trailing newline", "h1,h2\na,b", CheckStatusPassed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRun()
			r.checkNoEmptyRows(tt.text)
			assert.Equal(t, tt.want, lastCheck(t, r).Status)
		})
	}
}

func TestCheckDetailOnlyKeptForFailures(t *testing.T) {
	r := newTestRun()
	r.checkNoTrailingCommas("a,b\n")
	assert.Empty(t, lastCheck(t, r).Detail)
}
