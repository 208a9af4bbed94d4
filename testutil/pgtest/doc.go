// Package pgtest runs record store tests against a real PostgreSQL database.
//
// Tests using it are skipped unless LIBRARY_POSTGRES_TEST_DSN is set. DB_ADAPTER selects
// the connection type (pgx, sql or sqlx, default pgx). Every wrapper works on its own table,
// which is dropped when the test ends.
package pgtest
