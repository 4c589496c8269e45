package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/vvka-141/ksload/internal/checksum"
	"github.com/vvka-141/ksload/internal/dataset"
	"github.com/vvka-141/ksload/internal/files/filesystem"
	"github.com/vvka-141/ksload/internal/store"
	"github.com/vvka-141/ksload/pkg/ksload"
)

// LoadOptions controls how a CSV is parsed and where it is written.
type LoadOptions struct {
	// TableName is the table replaced by the load
	TableName string

	// Encodings are tried in order until one decodes the file
	Encodings []string

	// WriteRetries repeats the table replace when the database stays locked
	WriteRetries int
}

// Loader reads a CSV file into a Dataset and replaces a SQLite table with it.
// Diagnostics are written to out; progress details go to the logger.
type Loader struct {
	fs     filesystem.FileSystemProvider
	calc   checksum.Calculator
	logger ksload.Logger
	out    io.Writer
}

// NewLoader creates a Loader with all dependencies injected.
//
// Panics if any dependency is nil.
func NewLoader(fsys filesystem.FileSystemProvider, calc checksum.Calculator, logger ksload.Logger, out io.Writer) *Loader {
	if fsys == nil {
		panic("fs cannot be nil")
	}
	if calc == nil {
		panic("calc cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if out == nil {
		panic("out cannot be nil")
	}
	return &Loader{fs: fsys, calc: calc, logger: logger, out: out}
}

// Load parses csvPath and replaces opts.TableName in the database at dbPath.
// The parent directory of dbPath is created if needed. The returned Dataset is the
// full in-memory copy of what was persisted.
func (l *Loader) Load(ctx context.Context, csvPath, dbPath string, opts LoadOptions) (_ *dataset.Dataset, err error) {
	if opts.TableName == "" {
		opts.TableName = ksload.DefaultTableName
	}
	if len(opts.Encodings) == 0 {
		opts.Encodings = ksload.DefaultEncodings()
	}
	start := time.Now()

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	fmt.Fprintf(l.out, "Loading data from %s...\n", csvPath)

	content, err := l.fs.ReadFile(csvPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ksload.ErrCSVNotFound, csvPath)
		}
		return nil, fmt.Errorf("failed to read %s: %w", csvPath, err)
	}
	l.logger.Verbose("Read %d bytes from %s", len(content), csvPath)
	l.logger.Verbose("Source sha256=%s normalized=%s", l.calc.CalculateRaw(content), l.calc.CalculateNormalized(content))

	res, err := dataset.Parse(content, opts.Encodings...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", csvPath, err)
	}
	for i, failure := range res.Failed {
		fmt.Fprintf(l.out, "%s encoding failed, trying %s...\n", opts.Encodings[i], opts.Encodings[i+1])
		l.logger.Verbose("%v", failure)
	}
	ds := res.Dataset
	l.logger.Verbose("Parsed %d rows x %d columns as %s", ds.NumRows(), ds.NumColumns(), res.Encoding)

	db, err := store.Open(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			l.logger.Error("error closing database %s: %v", dbPath, closeErr)
			if err == nil {
				err = fmt.Errorf("%w: failed to close %s: %v", ksload.ErrDatabase, dbPath, closeErr)
			}
		}
	}()

	if opts.WriteRetries > 0 {
		db.SetRetry(store.NewRetryExecutor(opts.WriteRetries).WithOnRetry(func(attempt int, err error, delay time.Duration) {
			l.logger.Verbose("Database %s is locked, retry %d of %d in %s: %v",
				dbPath, attempt+1, opts.WriteRetries, delay.Round(time.Millisecond), err)
		}))
	}

	if err := db.ReplaceTable(ctx, opts.TableName, ds); err != nil {
		return nil, err
	}

	l.report(dbPath, opts.TableName, ds)
	l.logger.Verbose("Load finished in %s", time.Since(start).Round(time.Millisecond))

	return ds, nil
}

func (l *Loader) report(dbPath, table string, ds *dataset.Dataset) {
	fmt.Fprintf(l.out, "Data loaded successfully into %s\n", dbPath)
	fmt.Fprintf(l.out, "Table: %s\n", table)
	fmt.Fprintf(l.out, "Rows: %d\n", ds.NumRows())
	fmt.Fprintf(l.out, "Columns: %d\n", ds.NumColumns())

	fmt.Fprintln(l.out, "\nColumn headers:")
	for i, name := range ds.ColumnNames() {
		fmt.Fprintf(l.out, "%2d. %s\n", i+1, name)
	}

	fmt.Fprintln(l.out, "\nData types:")
	nameWidth, typeWidth := 0, 0
	for _, c := range ds.Columns {
		nameWidth = max(nameWidth, len(c.Name))
		typeWidth = max(typeWidth, len(c.Type.String()))
	}
	for _, c := range ds.Columns {
		fmt.Fprintf(l.out, "%-*s    %*s\n", nameWidth, c.Name, typeWidth, c.Type.String())
	}
}
