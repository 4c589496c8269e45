package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/ksload/pkg/ksload"
)

// Result is the outcome of a successful Parse.
type Result struct {
	// Dataset is the parsed table
	Dataset *Dataset

	// Encoding is the canonical name of the encoding that decoded the content
	Encoding string

	// Failed holds one decode error per encoding tried before Encoding, in order
	Failed []error
}

// Parse decodes content with each encoding in turn and parses the first successful decode.
// Only decode failures move on to the next encoding; a parse failure is returned at once.
// When every encoding fails the joined decode errors are returned.
func Parse(content []byte, encodings ...string) (*Result, error) {
	if len(encodings) == 0 {
		encodings = ksload.DefaultEncodings()
	}

	var failed []error
	for _, enc := range encodings {
		text, err := decode(content, enc)
		if err != nil {
			failed = append(failed, err)
			continue
		}

		ds, err := ParseText(text)
		if err != nil {
			return nil, err
		}
		return &Result{
			Dataset:  ds,
			Encoding: ksload.NormalizeEncoding(enc),
			Failed:   failed,
		}, nil
	}

	return nil, fmt.Errorf("no encoding could decode the file (tried %s): %w",
		strings.Join(encodings, ", "), errors.Join(failed...))
}

// ParseText tokenizes decoded CSV text into a typed Dataset.
// The first record is the header. Blank lines are skipped, records shorter than the header
// are padded with nulls, longer records and quoting errors are ErrMalformedCSV.
func ParseText(text string) (*Dataset, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no columns to parse from file", ksload.ErrMalformedCSV)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ksload.ErrMalformedCSV, err)
	}
	names := normalizeHeader(header)

	var records [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ksload.ErrMalformedCSV, err)
		}
		if len(rec) > len(names) {
			line, _ := r.FieldPos(0)
			return nil, fmt.Errorf("%w: expected %d fields in line %d, saw %d",
				ksload.ErrMalformedCSV, len(names), line, len(rec))
		}
		for len(rec) < len(names) {
			rec = append(rec, "")
		}
		records = append(records, rec)
	}

	ds := &Dataset{
		Columns: make([]Column, len(names)),
		Rows:    make([][]any, len(records)),
	}
	for i, name := range names {
		ds.Columns[i] = Column{Name: name, Type: inferType(records, i)}
	}
	for i, rec := range records {
		row := make([]any, len(names))
		for j, cell := range rec {
			row[j] = convert(cell, ds.Columns[j].Type)
		}
		ds.Rows[i] = row
	}

	return ds, nil
}

// normalizeHeader names empty header cells "Unnamed: <index>" and suffixes repeated
// names with ".1", ".2", ... in order of appearance.
func normalizeHeader(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))

	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			base := name
			for {
				n++
				name = fmt.Sprintf("%s.%d", base, n)
				if _, taken := seen[name]; !taken {
					break
				}
			}
			seen[base] = n
		}
		seen[name] = 0
		names[i] = name
	}

	return names
}
