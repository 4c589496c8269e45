package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/vvka-141/ksload/internal/dataset"
	"github.com/vvka-141/ksload/pkg/ksload"
)

// ReplaceTable drops table if it exists, recreates it from the dataset's columns and
// inserts every row in order. Everything runs in one transaction: on failure the previous
// table, if any, is left as it was. Attempts that fail on a locked database are retried.
func (d *DB) ReplaceTable(ctx context.Context, table string, ds *dataset.Dataset) error {
	if ds.NumColumns() == 0 {
		return fmt.Errorf("%w: dataset for %s has no columns", ksload.ErrDatabase, table)
	}
	return d.retry.Execute(ctx, func(ctx context.Context) error {
		return d.replaceOnce(ctx, table, ds)
	})
}

func (d *DB) replaceOnce(ctx context.Context, table string, ds *dataset.Dataset) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", ksload.ErrDatabase, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(table)); err != nil {
		return fmt.Errorf("%w: failed to drop %s: %w", ksload.ErrDatabase, table, err)
	}

	if _, err = tx.ExecContext(ctx, createTableSQL(table, ds.Columns)); err != nil {
		return fmt.Errorf("%w: failed to create %s: %w", ksload.ErrDatabase, table, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertSQL(table, len(ds.Columns)))
	if err != nil {
		return fmt.Errorf("%w: failed to prepare insert: %w", ksload.ErrDatabase, err)
	}
	defer stmt.Close()

	for i, row := range ds.Rows {
		if _, err = stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("%w: failed to insert row %d: %w", ksload.ErrDatabase, i+1, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit %s: %w", ksload.ErrDatabase, table, err)
	}
	return nil
}

func createTableSQL(table string, columns []dataset.Column) string {
	defs := make([]string, len(columns))
	for i, c := range columns {
		defs[i] = quoteIdent(c.Name) + " " + c.Type.SQLType()
	}
	return fmt.Sprintf("CREATE TABLE %s (\n\t%s\n)", quoteIdent(table), strings.Join(defs, ",\n\t"))
}

func insertSQL(table string, n int) string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
	return fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(table), placeholders)
}
