package adapters

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// contextQueryer is satisfied by both *sql.DB and *sqlx.DB.
type contextQueryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// StdAdapter implements DBAdapter for database/sql based connections.
type StdAdapter struct {
	db contextQueryer
}

// NewSQLAdapter creates an adapter for a sql.DB.
func NewSQLAdapter(db *sql.DB) *StdAdapter {
	return &StdAdapter{db: db}
}

// NewSQLXAdapter creates an adapter for a sqlx.DB.
func NewSQLXAdapter(db *sqlx.DB) *StdAdapter {
	return &StdAdapter{db: db}
}

// Query runs a query and wraps the rows.
func (s *StdAdapter) Query(ctx context.Context, query string) (DBRows, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &stdRows{rows: rows}, nil
}

// Exec runs a statement and wraps the result.
func (s *StdAdapter) Exec(ctx context.Context, query string) (DBResult, error) {
	result, err := s.db.ExecContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return result, nil
}

type stdRows struct {
	rows *sql.Rows
}

func (s *stdRows) Next() bool {
	return s.rows.Next()
}

func (s *stdRows) Scan(dest ...any) error {
	return s.rows.Scan(dest...)
}

func (s *stdRows) Err() error {
	return s.rows.Err()
}

func (s *stdRows) Close() error {
	return s.rows.Close()
}
