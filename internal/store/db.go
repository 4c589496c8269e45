// Package store handles the SQLite database file the loader writes and the explorer reads.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/vvka-141/ksload/internal/retry"
	"github.com/vvka-141/ksload/pkg/ksload"
)

// DB is an open SQLite database file.
type DB struct {
	db    *sql.DB
	path  string
	retry *retry.Executor
}

// Open opens the database at path, creating the file if it does not exist.
// The parent directory must already exist.
func Open(ctx context.Context, path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %v", ksload.ErrDatabase, err)
	}

	// Single writer connection; SQLite serializes writes anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	// Set busy timeout to 5 seconds (SQLite will retry for this duration)
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to set busy timeout: %v", ksload.ErrDatabase, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: database ping failed: %v", ksload.ErrDatabase, err)
	}

	return &DB{
		db:    db,
		path:  path,
		retry: NewRetryExecutor(0),
	}, nil
}

// OpenExisting opens a database file that must already exist.
// A missing file is reported as ksload.ErrDatabaseNotFound and is not created.
func OpenExisting(ctx context.Context, path string) (*DB, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ksload.ErrDatabaseNotFound, path)
		}
		return nil, fmt.Errorf("%w: failed to access %s: %v", ksload.ErrDatabase, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ksload.ErrDatabase, path)
	}
	return Open(ctx, path)
}

// NewRetryExecutor returns an executor that repeats writes failing with SQLITE_BUSY or
// SQLITE_LOCKED up to retries times.
func NewRetryExecutor(retries int) *retry.Executor {
	return retry.NewExecutor(retry.NewSQLiteErrorClassifier(), retry.NewExponentialBackoff(retries))
}

// SetRetry replaces the executor used for writes. The default never retries.
func (d *DB) SetRetry(e *retry.Executor) {
	d.retry = e
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.path
}

// Close closes the underlying connection pool.
func (d *DB) Close() error {
	return d.db.Close()
}

// quoteIdent quotes name as an SQLite identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
