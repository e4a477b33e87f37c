/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"log/slog"

	"github.com/opengeodata-se/refcheck/pkg/dataset"
)

// fileRun accumulates check results for one dataset file and streams the
// textual report lines as checks execute.
type fileRun struct {
	v    *Validator
	file FileResult
}

// check records one named check outcome. The detail is kept only for
// failures. Checks matching the skip filter are recorded as skipped and
// neither pass nor fail.
func (r *fileRun) check(name string, ok bool, detail string) bool {
	if r.v.skip.Match(name) {
		r.file.Checks = append(r.file.Checks, CheckResult{Name: name, Status: CheckStatusSkipped})
		fmt.Fprintf(r.v.out, "  - %s (skipped)\n", name)
		return ok
	}

	res := CheckResult{Name: name, Status: CheckStatusPassed}
	if ok {
		fmt.Fprintf(r.v.out, "  ✓ %s\n", name)
	} else {
		res.Status = CheckStatusFailed
		res.Detail = detail
		if detail != "" {
			fmt.Fprintf(r.v.out, "  ✗ %s — %s\n", name, detail)
		} else {
			fmt.Fprintf(r.v.out, "  ✗ %s\n", name)
		}
		slog.Debug("check failed", "file", r.file.File, "check", name, "detail", detail)
	}
	r.file.Checks = append(r.file.Checks, res)
	return ok
}

// structuralChecks runs the byte- and shape-level checks applied identically
// to every file.
func (r *fileRun) structuralChecks(f *dataset.File) {
	r.checkNoBOM(f.Raw)
	r.checkLineEndings(f.Raw)
	r.checkHeader(f.Header, f.Dataset.Header)
	r.checkNoTrailingCommas(f.Text())
	r.checkNoEmptyRows(f.Text())
}

// formatChecks runs the per-row field checks driven by the dataset schema.
func (r *fileRun) formatChecks(f *dataset.File) {
	for _, cc := range f.Dataset.CodeColumns {
		r.checkCodeFormat(f.Rows, cc.Name, cc.Length)
	}
	r.checkNoDuplicates(f.Rows, f.Dataset.KeyColumn)
	if f.Dataset.ExpectedRows > 0 {
		r.checkRowCount(f.Rows, f.Dataset.ExpectedRows)
	}
	r.checkNFCNames(f.Rows, f.Dataset.NameColumns)
}

// finish prints the row-count trailer and appends the file's results to the
// report.
func (r *fileRun) finish(report *Report, rows int) {
	r.file.RowCount = rows
	fmt.Fprintf(r.v.out, "  — %d rows\n", rows)
	report.Files = append(report.Files, r.file)
}
