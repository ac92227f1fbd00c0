// Package csvio reads and writes the semicolon-separated CSV files the
// service exchanges with its users: batch input, batch results, single-record
// exports and the fill-in template.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/FereolKpavode/CHURN/internal/application/dto"
)

// separator is the field separator of every file the service touches.
const separator = ';'

// ReadBatch parses a batch input file. The header must carry every required
// column; column order is free and unknown columns are ignored. Lines are
// numbered from 1 over the data rows, matching what users see in their
// spreadsheet below the header. Malformed rows fail their row, not the file:
// unparseable cells, short or long records and per-record quoting errors come
// back in the second return value so the batch report can list them next to
// the scored ones.
func ReadBatch(r io.Reader) ([]dto.BatchRow, []dto.BatchRowError, error) {
	cr := csv.NewReader(r)
	cr.Comma = separator
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, required := range dto.BatchColumns {
		if _, ok := index[required]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var (
		rows    []dto.BatchRow
		badRows []dto.BatchRowError
	)
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				badRows = append(badRows, dto.BatchRowError{Line: line, Messages: []string{parseErr.Err.Error()}})
				continue
			}
			return nil, nil, fmt.Errorf("reading batch file: %w", err)
		}
		if len(record) != len(header) {
			badRows = append(badRows, dto.BatchRowError{Line: line, Messages: []string{
				fmt.Sprintf("expected %d fields, got %d", len(header), len(record)),
			}})
			continue
		}

		fields := make(map[string]string, len(dto.BatchColumns))
		for _, name := range dto.BatchColumns {
			fields[name] = record[index[name]]
		}

		attrs, err := dto.AttributesFromStrings(fields)
		if err != nil {
			badRows = append(badRows, dto.BatchRowError{Line: line, Messages: []string{err.Error()}})
			continue
		}
		rows = append(rows, dto.BatchRow{Line: line, Attributes: attrs})
	}

	if line == 0 {
		return nil, nil, fmt.Errorf("file contains no data rows")
	}
	return rows, badRows, nil
}
