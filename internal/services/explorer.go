package services

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/vvka-141/ksload/internal/store"
	"github.com/vvka-141/ksload/pkg/ksload"
)

// Explorer prints the schema, row count and leading rows of a loaded table.
type Explorer struct {
	logger ksload.Logger
	out    io.Writer
}

// NewExplorer creates an Explorer writing to out.
//
// Panics if any dependency is nil.
func NewExplorer(logger ksload.Logger, out io.Writer) *Explorer {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if out == nil {
		panic("out cannot be nil")
	}
	return &Explorer{logger: logger, out: out}
}

// Explore reads table from the existing database at dbPath and prints its structure
// followed by the first sampleRows rows. The database file is never created.
// Returns the row count it printed.
func (e *Explorer) Explore(ctx context.Context, dbPath, table string, sampleRows int) (_ int64, err error) {
	db, err := store.OpenExisting(ctx, dbPath)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			e.logger.Error("error closing database %s: %v", dbPath, closeErr)
			if err == nil {
				err = fmt.Errorf("%w: failed to close %s: %v", ksload.ErrDatabase, dbPath, closeErr)
			}
		}
	}()

	cols, err := db.TableInfo(ctx, table)
	if err != nil {
		return 0, err
	}
	fmt.Fprintln(e.out, "Database Schema:")
	fmt.Fprintln(e.out, "Column | Type | Not Null | Default | Primary Key")
	fmt.Fprintln(e.out, strings.Repeat("-", 50))
	for _, c := range cols {
		fmt.Fprintf(e.out, "%-15s | %-8s | %-8d | %-7s | %d\n",
			c.Name, c.Type, boolToInt(c.NotNull), FormatValue(c.Default), c.PrimaryKey)
	}

	count, err := db.CountRows(ctx, table)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(e.out, "\nTotal rows: %d\n", count)

	sample, err := db.SampleRows(ctx, table, sampleRows)
	if err != nil {
		return 0, err
	}
	e.logger.Verbose("Fetched %d sample rows from %s", len(sample.Rows), table)

	fmt.Fprintf(e.out, "\nSample data (first %d rows):\n", sampleRows)
	for i, row := range sample.Rows {
		fmt.Fprintf(e.out, "\nRow %d:\n", i+1)
		for j, name := range sample.Columns {
			fmt.Fprintf(e.out, "  %s: %s\n", name, FormatValue(row[j]))
		}
	}

	return count, nil
}

// FormatValue renders a value read from SQLite for display.
// nil prints as NULL and whole floats keep a trailing ".0" so REAL columns stay
// distinguishable from INTEGER ones.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return formatFloat(x)
	case bool:
		if x {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
