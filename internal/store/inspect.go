package store

import (
	"context"
	"fmt"

	"github.com/vvka-141/ksload/pkg/ksload"
)

// ColumnInfo is one row of SQLite's table_info pragma.
type ColumnInfo struct {
	CID        int
	Name       string
	Type       string
	NotNull    bool
	Default    any
	PrimaryKey int
}

// Sample holds rows read back from a table with their column names.
type Sample struct {
	Columns []string
	Rows    [][]any
}

// TableInfo returns the declared columns of table in order.
// A table with no columns does not exist and is reported as ksload.ErrTableNotFound.
func (d *DB) TableInfo(ctx context.Context, table string) ([]ColumnInfo, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT cid, name, type, "notnull", dflt_value, pk FROM pragma_table_info(?) ORDER BY cid`, table)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read schema of %s: %v", ksload.ErrDatabase, table, err)
	}
	defer rows.Close()

	var cols []ColumnInfo
	for rows.Next() {
		var c ColumnInfo
		var notNull int
		if err := rows.Scan(&c.CID, &c.Name, &c.Type, &notNull, &c.Default, &c.PrimaryKey); err != nil {
			return nil, fmt.Errorf("%w: failed to scan schema row: %v", ksload.ErrDatabase, err)
		}
		c.NotNull = notNull != 0
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read schema of %s: %v", ksload.ErrDatabase, table, err)
	}

	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: %s", ksload.ErrTableNotFound, table)
	}
	return cols, nil
}

// CountRows returns the number of rows in table.
func (d *DB) CountRows(ctx context.Context, table string) (int64, error) {
	var n int64
	err := d.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+quoteIdent(table)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count rows of %s: %v", ksload.ErrDatabase, table, err)
	}
	return n, nil
}

// SampleRows returns up to limit rows of table in storage order.
func (d *DB) SampleRows(ctx context.Context, table string, limit int) (*Sample, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(table)+" LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query %s: %v", ksload.ErrDatabase, table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read columns of %s: %v", ksload.ErrDatabase, table, err)
	}

	sample := &Sample{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: failed to scan row of %s: %v", ksload.ErrDatabase, table, err)
		}
		sample.Rows = append(sample.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to query %s: %v", ksload.ErrDatabase, table, err)
	}

	return sample, nil
}
