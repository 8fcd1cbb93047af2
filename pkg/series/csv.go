package series

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/calheat/calheat/pkg/errors"
)

// Columns names the CSV columns a series is read from. Matching against
// the header row is case-insensitive. Label may be empty or absent; Date
// and Value are required.
type Columns struct {
	Date  string
	Value string
	Label string
}

// DefaultColumns is used when no column mapping is given.
var DefaultColumns = Columns{Date: "date", Value: "value", Label: "label"}

// ReadCSV decodes a CSV time series from r.
//
// The first record must be a header row containing the date and value
// columns (and optionally the label column). Dates use the ISO
// YYYY-MM-DD format; values must parse as floats. Rows whose date is
// already present are skipped, keeping the first occurrence.
//
// ReadCSV returns a structured error with code INVALID_CSV for a
// missing or incomplete header, an unparsable date or value, or an
// empty input. It does not close r.
func ReadCSV(r io.Reader, cols Columns) (*Series, error) {
	if cols.Date == "" {
		cols.Date = DefaultColumns.Date
	}
	if cols.Value == "" {
		cols.Value = DefaultColumns.Value
	}
	if cols.Label == "" {
		cols.Label = DefaultColumns.Label
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidCSV, "empty input")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCSV, err, "read header")
	}

	dateIdx, valueIdx, labelIdx := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case strings.ToLower(cols.Date):
			dateIdx = i
		case strings.ToLower(cols.Value):
			valueIdx = i
		case strings.ToLower(cols.Label):
			labelIdx = i
		}
	}
	if dateIdx < 0 {
		return nil, errors.New(errors.ErrCodeInvalidCSV, "header has no %q column", cols.Date)
	}
	if valueIdx < 0 {
		return nil, errors.New(errors.ErrCodeInvalidCSV, "header has no %q column", cols.Value)
	}

	s := New()
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCSV, err, "row %d", row)
		}

		date, err := time.Parse(DateKeyFormat, strings.TrimSpace(record[dateIdx]))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCSV, err, "row %d: date", row)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(record[valueIdx]), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCSV, err, "row %d: value", row)
		}

		e := Entry{Date: date, Value: value}
		if labelIdx >= 0 && labelIdx < len(record) {
			e.Label = strings.TrimSpace(record[labelIdx])
		}
		s.Add(e)
	}

	if s.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCSV, "no data rows")
	}
	return s, nil
}

// ImportCSV reads a CSV file at path and returns the decoded series.
// The returned errors carry FILE_NOT_FOUND for a missing file and the
// same INVALID_CSV codes as [ReadCSV] for malformed content.
func ImportCSV(path string, cols Columns) (*Series, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return ReadCSV(f, cols)
}
