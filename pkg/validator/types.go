/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"time"

	"github.com/google/uuid"

	"github.com/opengeodata-se/refcheck/pkg/header"
)

const (
	// APIVersion is the API version for validation reports.
	APIVersion = "refcheck.opengeodata.se/v1alpha1"

	// Kind is the kind for validation reports.
	Kind = "ValidationReport"
)

// CheckStatus is the outcome of a single check.
type CheckStatus string

const (
	CheckStatusPassed  CheckStatus = "passed"
	CheckStatusFailed  CheckStatus = "failed"
	CheckStatusSkipped CheckStatus = "skipped"
)

// ReportStatus is the aggregate outcome of a validation run.
type ReportStatus string

const (
	ReportStatusPass ReportStatus = "pass"
	ReportStatusFail ReportStatus = "fail"
)

// CheckResult is the recorded outcome of one named check. Detail is only
// populated for failures and holds the diagnostic preview (offending values
// and line numbers, capped per check).
type CheckResult struct {
	Name   string      `json:"name" yaml:"name"`
	Status CheckStatus `json:"status" yaml:"status"`
	Detail string      `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// FileResult groups the check results for one dataset file.
type FileResult struct {
	File     string        `json:"file" yaml:"file"`
	RowCount int           `json:"rowCount" yaml:"rowCount"`
	Checks   []CheckResult `json:"checks" yaml:"checks"`
}

// Summary holds aggregate counts for a validation run.
type Summary struct {
	Total    int           `json:"total" yaml:"total"`
	Passed   int           `json:"passed" yaml:"passed"`
	Failed   int           `json:"failed" yaml:"failed"`
	Skipped  int           `json:"skipped" yaml:"skipped"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Status   ReportStatus  `json:"status" yaml:"status"`
}

// Report is the structured outcome of one validation run: per-file check
// results plus the aggregate summary, wrapped in a resource header.
type Report struct {
	header.Header `yaml:",inline"`

	Files   []FileResult `json:"files" yaml:"files"`
	Summary Summary      `json:"summary" yaml:"summary"`
}

// NewReport creates an empty report with header metadata filled in.
func NewReport(version string) *Report {
	h := header.New(
		header.WithKind(Kind),
		header.WithAPIVersion(APIVersion),
		header.WithMetadata("run-id", uuid.New().String()),
		header.WithMetadata("generated-at", time.Now().UTC().Format(time.RFC3339)),
	)
	if version != "" {
		h.Metadata["tool-version"] = version
	}
	return &Report{Header: *h}
}
