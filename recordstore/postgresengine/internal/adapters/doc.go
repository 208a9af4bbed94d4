// Package adapters lets the Postgres record store run on pgxpool.Pool, sql.DB or sqlx.DB.
//
// Every adapter satisfies DBAdapter, so the record store only builds SQL strings and
// never touches driver-specific types.
package adapters
