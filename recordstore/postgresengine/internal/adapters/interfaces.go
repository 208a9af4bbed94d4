package adapters

import "context"

// DBAdapter is the set of database operations the record store needs.
type DBAdapter interface {
	Query(ctx context.Context, query string) (DBRows, error)
	Exec(ctx context.Context, query string) (DBResult, error)
}

// DBRows iterates over query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DBResult describes the outcome of a statement execution.
type DBResult interface {
	RowsAffected() (int64, error)
}
