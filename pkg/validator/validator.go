/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/opengeodata-se/refcheck/pkg/dataset"
)

var separator = strings.Repeat("=", 60)

// Validator runs the full check battery over the reference CSV files.
type Validator struct {
	dataDir string
	version string
	out     io.Writer
	skip    *SkipFilter
	reg     dataset.Registry
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithDataDir returns an Option that sets the directory containing the
// reference CSV files.
func WithDataDir(dir string) Option {
	return func(v *Validator) {
		v.dataDir = dir
	}
}

// WithVersion returns an Option that sets the tool version recorded in the
// report header.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.version = version
	}
}

// WithOutput returns an Option that sets the writer the textual report is
// streamed to as checks execute. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(v *Validator) {
		v.out = w
	}
}

// WithSkipPatterns returns an Option that excludes checks whose name matches
// any of the given wildcard patterns.
func WithSkipPatterns(patterns []string) Option {
	return func(v *Validator) {
		v.skip = NewSkipFilter(patterns)
	}
}

// WithRegistry returns an Option that replaces the default dataset registry.
func WithRegistry(reg dataset.Registry) Option {
	return func(v *Validator) {
		v.reg = reg
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{
		dataDir: "data",
		out:     os.Stdout,
		skip:    NewSkipFilter(nil),
		reg:     dataset.DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Run executes the full battery in stage order: counties, municipalities,
// the municipality-county join, then the postal mapping. Each stage's code
// lookup feeds the later stages. Check failures are recorded in the report
// and never abort the run; only environment failures (unreadable file,
// invalid UTF-8, cancelled context) return an error, leaving the textual
// report printed up to the failing stage.
func (v *Validator) Run(ctx context.Context) (*Report, error) {
	report, err := v.run(ctx)
	if err != nil {
		validationRunsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	validationRunsTotal.WithLabelValues(string(report.Summary.Status)).Inc()
	return report, nil
}

func (v *Validator) run(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := NewReport(v.version)

	fmt.Fprintln(v.out, "Swedish Geodata — CSV Validation")
	fmt.Fprintln(v.out, separator)

	counties, err := v.validateCounties(ctx, report)
	if err != nil {
		return nil, err
	}
	municipalities, err := v.validateMunicipalities(ctx, report, counties)
	if err != nil {
		return nil, err
	}
	if err := v.validateMunicipalityCounty(ctx, report, counties, municipalities); err != nil {
		return nil, err
	}
	if err := v.validatePostal(ctx, report, municipalities); err != nil {
		return nil, err
	}

	v.finalize(report, time.Since(start))
	return report, nil
}

// beginStage prints the file banner and loads the file. The banner comes
// first so an environment failure still leaves a trace of where the run
// stopped.
func (v *Validator) beginStage(ctx context.Context, ds dataset.Dataset) (*dataset.File, *fileRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	fmt.Fprintf(v.out, "\n%s\n%s\n%s\n", separator, ds.Filename, separator)

	f, err := dataset.Load(v.dataDir, ds)
	if err != nil {
		return nil, nil, err
	}
	return f, &fileRun{v: v, file: FileResult{File: ds.Filename}}, nil
}

func (v *Validator) validateCounties(ctx context.Context, report *Report) (map[string]dataset.Row, error) {
	f, run, err := v.beginStage(ctx, v.reg.Counties)
	if err != nil {
		return nil, err
	}
	run.structuralChecks(f)
	run.formatChecks(f)
	run.finish(report, len(f.Rows))
	return lookupBy(f.Rows, dataset.ColCountyCode), nil
}

func (v *Validator) validateMunicipalities(ctx context.Context, report *Report, counties map[string]dataset.Row) (map[string]dataset.Row, error) {
	f, run, err := v.beginStage(ctx, v.reg.Municipalities)
	if err != nil {
		return nil, err
	}
	run.structuralChecks(f)
	run.formatChecks(f)
	run.checkForeignKey(f.Rows, dataset.ColCountyCode, counties, v.reg.Counties.Filename)
	run.checkCountyPrefix(f.Rows)
	run.finish(report, len(f.Rows))
	return lookupBy(f.Rows, dataset.ColMunicipalityCode), nil
}

func (v *Validator) validateMunicipalityCounty(ctx context.Context, report *Report, counties, municipalities map[string]dataset.Row) error {
	f, run, err := v.beginStage(ctx, v.reg.MunicipalityCounty)
	if err != nil {
		return err
	}
	run.structuralChecks(f)
	run.formatChecks(f)
	run.checkForeignKey(f.Rows, dataset.ColCountyCode, counties, v.reg.Counties.Filename)
	run.checkForeignKey(f.Rows, dataset.ColMunicipalityCode, municipalities, v.reg.Municipalities.Filename)
	run.checkCountyPrefix(f.Rows)
	run.checkJoinColumns(
		fmt.Sprintf("Join consistency (county columns match %s)", v.reg.Counties.Filename),
		f.Rows, dataset.ColCountyCode, counties,
		[]string{dataset.ColCountyName, dataset.ColCountyNameShort})
	run.checkJoinColumns(
		fmt.Sprintf("Join consistency (municipality columns match %s)", v.reg.Municipalities.Filename),
		f.Rows, dataset.ColMunicipalityCode, municipalities,
		[]string{dataset.ColMunicipalityName, dataset.ColMunicipalityNameShort})
	run.finish(report, len(f.Rows))
	return nil
}

func (v *Validator) validatePostal(ctx context.Context, report *Report, municipalities map[string]dataset.Row) error {
	f, run, err := v.beginStage(ctx, v.reg.Postal)
	if err != nil {
		return err
	}
	run.structuralChecks(f)
	run.formatChecks(f)
	run.checkForeignKey(f.Rows, dataset.ColMunicipalityCode, municipalities, v.reg.Municipalities.Filename)
	run.checkPostalNames(f.Rows, municipalities)
	run.finish(report, len(f.Rows))
	return nil
}

// finalize computes the summary, prints the trailing section and records
// run metrics.
func (v *Validator) finalize(report *Report, elapsed time.Duration) {
	for _, fr := range report.Files {
		for _, c := range fr.Checks {
			report.Summary.Total++
			switch c.Status {
			case CheckStatusPassed:
				report.Summary.Passed++
			case CheckStatusFailed:
				report.Summary.Failed++
			case CheckStatusSkipped:
				report.Summary.Skipped++
			}
			checkResultsTotal.WithLabelValues(string(c.Status)).Inc()
		}
		datasetRows.WithLabelValues(fr.File).Set(float64(fr.RowCount))
	}
	report.Summary.Duration = elapsed
	if report.Summary.Failed > 0 {
		report.Summary.Status = ReportStatusFail
	} else {
		report.Summary.Status = ReportStatusPass
	}
	validationDuration.Observe(elapsed.Seconds())

	fmt.Fprintf(v.out, "\n%s\n", separator)
	if report.Summary.Failed == 0 {
		fmt.Fprintln(v.out, "All checks passed.")
	} else {
		fmt.Fprintf(v.out, "%d check(s) FAILED.\n", report.Summary.Failed)
	}

	slog.Debug("validation completed",
		"passed", report.Summary.Passed,
		"failed", report.Summary.Failed,
		"skipped", report.Summary.Skipped,
		"status", report.Summary.Status,
		"duration", report.Summary.Duration)
}
