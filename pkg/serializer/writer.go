/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Writer serializes documents to a fixed destination in a fixed format.
type Writer struct {
	format Format
	out    io.Writer
	path   string
}

// NewWriter creates a Writer targeting out. Unknown formats fall back to
// JSON.
func NewWriter(format Format, out io.Writer) *Writer {
	return &Writer{format: format, out: out}
}

// NewStdoutWriter creates a Writer targeting stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout creates a Writer targeting the file at path, or
// stdout when path is empty or "-". The file is created at Serialize time.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format)
	}
	return &Writer{format: format, path: path}
}

// Serialize writes data to the writer's destination.
func (w *Writer) Serialize(ctx context.Context, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := w.out
	if w.path != "" {
		f, err := os.Create(w.path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", w.path, err)
		}
		defer f.Close()
		out = f
	}

	switch w.format {
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		return enc.Close()
	default:
		// JSON, also the fallback for unknown formats.
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		b = append(b, '\n')
		if _, err := out.Write(b); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
}
