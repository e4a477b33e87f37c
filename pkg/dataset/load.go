/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Row is one parsed data record keyed by the column names of the file's own
// header. Records shorter than the header yield "" for the missing columns;
// extra trailing fields are dropped. Looking up a column the file does not
// have returns "", so downstream checks stay non-fatal even when the header
// is wrong.
type Row map[string]string

// File is one reference CSV read fully into memory: the raw bytes for the
// byte-level checks plus the parsed header and data rows.
type File struct {
	Dataset Dataset
	Path    string
	Raw     []byte
	Header  []string
	Rows    []Row
}

// Load reads and parses one dataset file from dir. An unreadable file or one
// that is not valid UTF-8 is an environment failure and returns an error;
// everything that can be expressed as a check result is left to the caller.
func Load(dir string, ds Dataset) (*File, error) {
	path := filepath.Join(dir, ds.Filename)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ds.Filename, err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%s: not valid UTF-8", ds.Filename)
	}

	r := csv.NewReader(strings.NewReader(string(raw)))
	// Malformed rows must surface as check failures, not parse errors.
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ds.Filename, err)
	}

	f := &File{Dataset: ds, Path: path, Raw: raw}
	if len(records) == 0 {
		return f, nil
	}

	f.Header = records[0]
	f.Rows = make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(f.Header))
		for i, col := range f.Header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		f.Rows = append(f.Rows, row)
	}
	return f, nil
}

// Text returns the decoded file contents.
func (f *File) Text() string {
	return string(f.Raw)
}
