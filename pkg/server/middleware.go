/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	refErrors "github.com/opengeodata-se/refcheck/pkg/errors"
)

type contextKey string

const contextKeyRequestID contextKey = "request-id"

// withMiddleware wraps an API handler with request-ID propagation, rate
// limiting and request logging.
func (s *Server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		r = r.WithContext(context.WithValue(r.Context(), contextKeyRequestID, requestID))
		w.Header().Set("X-Request-ID", requestID)

		if !s.limiter.Allow() {
			WriteError(w, r, http.StatusTooManyRequests,
				refErrors.ErrCodeRateLimitExceeded, "rate limit exceeded", true, nil)
			return
		}

		next(w, r)

		slog.Info("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestID,
			"duration", time.Since(start))
	}
}
