package ksload

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := loader.Load(ctx, csvPath, dbPath, opts)
//	if errors.Is(err, ksload.ErrDecode) {
//	    // None of the configured encodings could decode the file
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCSVNotFound indicates the source CSV file does not exist.
	ErrCSVNotFound = errors.New("csv file not found")

	// ErrDecode indicates the CSV could not be decoded with a given encoding.
	ErrDecode = errors.New("decode failed")

	// ErrMalformedCSV indicates the CSV content could not be tokenized into a table.
	ErrMalformedCSV = errors.New("malformed csv")

	// ErrDatabase indicates a database read or write failed.
	ErrDatabase = errors.New("database error")

	// ErrDatabaseNotFound indicates the database file does not exist.
	ErrDatabaseNotFound = errors.New("database file not found")

	// ErrTableNotFound indicates the target table is missing from the database.
	ErrTableNotFound = errors.New("table not found")
)

// usageErrorPatterns are prefixes cobra and pflag use for command line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrDecode):
		return ExitDecodeError
	case errors.Is(err, ErrMalformedCSV):
		return ExitMalformedCSV
	case errors.Is(err, ErrTableNotFound), errors.Is(err, ErrDatabaseNotFound), errors.Is(err, ErrCSVNotFound):
		return ExitNotFound
	case errors.Is(err, ErrDatabase):
		return ExitDatabaseError
	}

	errStr := err.Error()
	for _, p := range usageErrorPatterns {
		if strings.HasPrefix(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
