package retry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openRaw(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteErrorClassifier_BusyIsTransient(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lock.db")

	holder := openRaw(t, path)
	_, err := holder.ExecContext(ctx, "CREATE TABLE t (n INTEGER)")
	require.NoError(t, err)

	conn, err := holder.Conn(ctx)
	require.NoError(t, err)
	defer conn.Close()
	_, err = conn.ExecContext(ctx, "BEGIN EXCLUSIVE")
	require.NoError(t, err)
	defer func() { _, _ = conn.ExecContext(ctx, "ROLLBACK") }()

	other := openRaw(t, path)
	_, err = other.ExecContext(ctx, "PRAGMA busy_timeout = 0")
	require.NoError(t, err)
	_, busyErr := other.ExecContext(ctx, "INSERT INTO t VALUES (1)")
	require.Error(t, busyErr)

	c := NewSQLiteErrorClassifier()
	assert.True(t, c.IsTransient(busyErr), "expected busy error to be transient: %v", busyErr)
	assert.True(t, c.IsTransient(fmt.Errorf("replace failed: %w", busyErr)), "wrapped errors are unwrapped")
}

func TestSQLiteErrorClassifier_FatalErrors(t *testing.T) {
	db := openRaw(t, filepath.Join(t.TempDir(), "fatal.db"))
	_, syntaxErr := db.ExecContext(context.Background(), "CREATE TABLE (")
	require.Error(t, syntaxErr)

	c := NewSQLiteErrorClassifier()
	assert.False(t, c.IsTransient(syntaxErr))
	assert.False(t, c.IsTransient(errors.New("database is locked")), "only driver errors are classified")
	assert.False(t, c.IsTransient(context.Canceled))
	assert.False(t, c.IsTransient(nil))
}
