// Package iotabular parses spreadsheet and delimited-text payloads
// into a generic header+rows table for schema normalization.
//
// Column headers are free text, case and spelling uncontrolled: no
// schema interpretation happens here, that is colmap's job.
package iotabular

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/unidadrb/padron/pkg/colmap"
)

// ParseCSV parses delimited-text bytes into a generic table. Rows with
// a column count different from the header are padded or truncated to
// fit. An empty payload yields a table with no rows.
func ParseCSV(data []byte) (colmap.Table, error) {
	var res colmap.Table

	text, err := decodeText(data)
	if err != nil {
		return res, err
	}

	r := csv.NewReader(strings.NewReader(text))
	// Column counts vary in real-world rosters, padding and truncation
	// are handled below.
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	headers, err := r.Read()
	if errors.Is(err, io.EOF) {
		return res, nil
	}
	if err != nil {
		return res, ParseError(err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}
	res.Headers = headers

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A malformed row degrades to skipped, it never fails
			// the file.
			continue
		}
		res.Rows = append(res.Rows, fitRow(row, len(headers)))
	}
	return res, nil
}

// fitRow pads a short row with empty cells or truncates a long one so
// every row matches the header width.
func fitRow(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	if len(row) > width {
		return row[:width]
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
