/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer writes refcheck documents to stdout or files in the
// supported output formats, and carries the JSON response helper for the
// HTTP server.
package serializer

// Format is an output format for the validation report.
type Format string

const (
	// FormatText is the human-readable report streamed while checks run.
	// It is rendered by the validator itself, not by Writer.
	FormatText Format = "text"

	// FormatJSON is indented JSON.
	FormatJSON Format = "json"

	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return false
	}
	return true
}

// StdoutURI is the special output path indicating stdout.
const StdoutURI = "-"
