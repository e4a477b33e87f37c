/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Validation run metrics
	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "refcheck_validation_duration_seconds",
			Help:    "Time taken to run the full check battery",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	validationRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refcheck_validation_runs_total",
			Help: "Total number of validation runs",
		},
		[]string{"status"}, // pass, fail or error
	)

	checkResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refcheck_check_results_total",
			Help: "Total number of individual check results",
		},
		[]string{"status"}, // passed, failed or skipped
	)

	datasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "refcheck_dataset_rows",
			Help: "Number of data rows seen in the last validation run",
		},
		[]string{"file"},
	)
)
