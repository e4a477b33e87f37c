/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	refErrors "github.com/opengeodata-se/refcheck/pkg/errors"
	"github.com/opengeodata-se/refcheck/pkg/serializer"
)

// ErrorResponse is the JSON error body returned by API endpoints.
type ErrorResponse struct {
	Code      string         `json:"code" yaml:"code"`
	Message   string         `json:"message" yaml:"message"`
	Details   map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string         `json:"requestId" yaml:"requestId"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Retryable bool           `json:"retryable" yaml:"retryable"`
}

// HTTPStatusFromCode maps a structured error code to an HTTP status.
func HTTPStatusFromCode(code refErrors.ErrorCode) int {
	switch code {
	case refErrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case refErrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case refErrors.ErrCodeNotFound:
		return http.StatusNotFound
	case refErrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case refErrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case refErrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case refErrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client may usefully retry.
func retryableFromCode(code refErrors.ErrorCode) bool {
	switch code {
	case refErrors.ErrCodeTimeout,
		refErrors.ErrCodeUnavailable,
		refErrors.ErrCodeRateLimitExceeded,
		refErrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails merges two detail maps, the second overwriting the first.
// Returns nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	merged := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code refErrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes an error response derived from err. Structured
// errors keep their code, message and context; anything else is reported as
// an internal error with the fallback message.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, details map[string]any) {

	if structured, ok := refErrors.As(err); ok {
		merged := mergeDetails(structured.Context, details)
		if structured.Cause != nil {
			if merged == nil {
				merged = make(map[string]any, 1)
			}
			merged["error"] = structured.Cause.Error()
		}
		WriteError(w, r, HTTPStatusFromCode(structured.Code), structured.Code,
			structured.Message, retryableFromCode(structured.Code), merged)
		return
	}

	merged := mergeDetails(details, nil)
	if err != nil {
		if merged == nil {
			merged = make(map[string]any, 1)
		}
		merged["error"] = err.Error()
	}
	WriteError(w, r, http.StatusInternalServerError, refErrors.ErrCodeInternal,
		fallbackMessage, true, merged)
}
