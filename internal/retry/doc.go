// Package retry re-runs SQLite writes that fail because another connection holds
// the database lock.
//
// SQLite already waits up to its busy timeout before reporting SQLITE_BUSY. The
// executor adds a few more attempts with exponential backoff on top of that, so a
// reader that keeps the file open for a while does not abort a long load.
//
// # Example Usage
//
//	executor := retry.NewExecutor(retry.NewSQLiteErrorClassifier(), retry.NewExponentialBackoff(3))
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return replaceTable(ctx)
//	})
//
// Executor instances are safe for concurrent use. WithOnRetry returns a copy.
package retry
