package ksload

import (
	"errors"
	"fmt"
	"strings"
)

// Settings contains all parameters needed for a load and explore run.
type Settings struct {
	// CSVPath is the source CSV file
	CSVPath string

	// DBPath is the SQLite database file written by the loader
	DBPath string

	// TableName is the table replaced on every load
	TableName string

	// SampleRows is how many rows the explorer prints
	SampleRows int

	// Encodings are attempted in order until one decodes the CSV
	Encodings []string

	// WriteRetries is how many times a table replace is repeated when the database
	// stays locked past the busy timeout. 0 disables retries.
	WriteRetries int

	// Verbose enables detailed logging
	Verbose bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		CSVPath:    DefaultCSVPath,
		DBPath:     DefaultDBPath,
		TableName:  DefaultTableName,
		SampleRows: DefaultSampleRows,
		Encodings:  DefaultEncodings(),
	}
}

// Validate checks if the Settings has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (s *Settings) Validate() error {
	var errs []error

	if s.CSVPath == "" {
		errs = append(errs, fmt.Errorf("CSVPath is required: %w", ErrInvalidConfig))
	}

	if s.DBPath == "" {
		errs = append(errs, fmt.Errorf("DBPath is required: %w", ErrInvalidConfig))
	}

	if strings.TrimSpace(s.TableName) == "" {
		errs = append(errs, fmt.Errorf("TableName is required: %w", ErrInvalidConfig))
	}

	if s.SampleRows < 0 {
		errs = append(errs, fmt.Errorf("SampleRows cannot be negative: %w", ErrInvalidConfig))
	}

	if s.WriteRetries < 0 {
		errs = append(errs, fmt.Errorf("WriteRetries cannot be negative: %w", ErrInvalidConfig))
	}

	if len(s.Encodings) == 0 {
		errs = append(errs, fmt.Errorf("at least one encoding is required: %w", ErrInvalidConfig))
	}
	for _, enc := range s.Encodings {
		if !IsKnownEncoding(enc) {
			errs = append(errs, fmt.Errorf("unknown encoding %q: %w", enc, ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}

// IsKnownEncoding reports whether name is an encoding the CSV parser supports.
// Matching is case-insensitive and accepts common aliases.
func IsKnownEncoding(name string) bool {
	return NormalizeEncoding(name) != ""
}

// NormalizeEncoding maps an encoding name or alias to its canonical name.
// Returns "" for unsupported encodings.
func NormalizeEncoding(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		return EncodingUTF8
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1", "l1":
		return EncodingLatin1
	default:
		return ""
	}
}
