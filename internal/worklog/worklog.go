// Package worklog reads daily time-tracking CSV files into TimeEntry
// sequences. A worklog file has the fixed header
// "time_spent,issue_name,issue_description" followed by one entry per row.
package worklog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cmoraes/tj-feed/internal/model"
)

// Headers is the required column set, in order.
var Headers = []string{"time_spent", "issue_name", "issue_description"}

// HeaderError reports a file whose header row does not match Headers exactly.
type HeaderError struct {
	File  string
	Found []string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("wrong headers in %q: expected %s, found %s",
		e.File, strings.Join(Headers, ","), strings.Join(e.Found, ","))
}

// RowError reports a data row that could not be parsed. Row is 1-based and
// counts data rows, excluding the header.
type RowError struct {
	File string
	Row  int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: row %d: %v", e.File, e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// ReadFile parses a worklog CSV file into its ordered entry sequence.
// A file containing only the header row yields an empty slice. Parsing stops
// at the first bad row; no entries are returned for a file that fails.
func ReadFile(path string) ([]model.TimeEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening worklog %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // the description column may be absent
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, &HeaderError{File: path, Found: nil}
	}
	if err != nil {
		return nil, fmt.Errorf("reading header of %q: %w", path, err)
	}
	if !headerMatches(header) {
		return nil, &HeaderError{File: path, Found: header}
	}

	var entries []model.TimeEntry
	for row := 1; ; row++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &RowError{File: path, Row: row, Err: err}
		}

		entry, err := parseRecord(record)
		if err != nil {
			return nil, &RowError{File: path, Row: row, Err: err}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func headerMatches(found []string) bool {
	if len(found) != len(Headers) {
		return false
	}
	for i, h := range Headers {
		if found[i] != h {
			return false
		}
	}
	return true
}

func parseRecord(record []string) (model.TimeEntry, error) {
	if len(record) < 2 || len(record) > 3 {
		return model.TimeEntry{}, fmt.Errorf("expected 2 or 3 columns, got %d", len(record))
	}

	duration, err := model.ParseDuration(strings.TrimSpace(record[0]))
	if err != nil {
		return model.TimeEntry{}, err
	}

	issue := strings.TrimSpace(record[1])
	if issue == "" {
		return model.TimeEntry{}, fmt.Errorf("issue_name must not be empty")
	}

	entry := model.TimeEntry{Duration: duration, IssueName: issue}
	if len(record) == 3 {
		entry.IssueDescription = strings.TrimSpace(record[2])
	}
	return entry, nil
}
