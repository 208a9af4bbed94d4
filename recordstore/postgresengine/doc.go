// Package postgresengine stores catalog collections in PostgreSQL.
//
// Each collection is one row of a small table, holding the complete ordered document
// array in a JSONB column:
//
//	CREATE TABLE catalog_collections (
//	    name       TEXT PRIMARY KEY,
//	    documents  JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL
//	);
//
// Load selects the row of a collection, a missing row is an empty collection.
// Save upserts the row, so it replaces the whole collection in one statement.
//
// The record store works with pgxpool.Pool, sql.DB (lib/pq) and sqlx.DB:
//
//	store, err := postgresengine.NewRecordStoreFromPGXPool(pool, postgresengine.WithLogger(logger))
//	if err != nil { ... }
//	if err = store.EnsureTable(ctx); err != nil { ... }
//	books, err := store.Load(ctx, recordstore.Books)
package postgresengine
