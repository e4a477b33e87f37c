/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"errors"
	"io"
	"io/fs"
	"net/http"

	refErrors "github.com/opengeodata-se/refcheck/pkg/errors"
	"github.com/opengeodata-se/refcheck/pkg/serializer"
	"github.com/opengeodata-se/refcheck/pkg/validator"
)

// handleValidate handles GET /v1/validate. It runs the full check battery
// against the configured data directory and returns the structured report:
// 200 when every check passed, 422 when any failed. Environment failures
// map to structured error responses.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed,
			refErrors.ErrCodeMethodNotAllowed, "method not allowed", false, nil)
		return
	}

	v := validator.New(
		validator.WithDataDir(s.cfg.DataDir),
		validator.WithVersion(s.version),
		validator.WithSkipPatterns(s.cfg.SkipPatterns),
		validator.WithOutput(io.Discard),
	)

	report, err := v.Run(r.Context())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			WriteErrorFromErr(w, r,
				refErrors.Wrap(refErrors.ErrCodeNotFound, "reference data file missing", err),
				"validation failed", map[string]any{"data_dir": s.cfg.DataDir})
			return
		}
		WriteErrorFromErr(w, r, err, "validation failed",
			map[string]any{"data_dir": s.cfg.DataDir})
		return
	}

	status := http.StatusOK
	if report.Summary.Failed > 0 {
		status = http.StatusUnprocessableEntity
	}
	serializer.RespondJSON(w, status, report)
}
