package config

import (
	"context"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/recordstore"
	"github.com/AntonStoeckl/library-catalog-go/recordstore/jsonfileengine"
	"github.com/AntonStoeckl/library-catalog-go/recordstore/postgresengine"
)

// NewRecordStore builds the record store engine the config selects.
// For Postgres it opens the connection and creates the collections table if needed.
// The returned close function releases the connection and is never nil.
func NewRecordStore(
	ctx context.Context,
	cfg Config,
	logger recordstore.Logger,
	metrics recordstore.MetricsCollector,
) (shell.RecordStore, func(), error) {

	noop := func() {}

	if err := cfg.Validate(); err != nil {
		return nil, noop, err
	}

	if cfg.Backend == BackendJSONFile {
		store, err := newJSONFileRecordStore(cfg, logger, metrics)
		return store, noop, err
	}

	return newPostgresRecordStore(ctx, cfg, logger, metrics)
}

func newJSONFileRecordStore(
	cfg Config,
	logger recordstore.Logger,
	metrics recordstore.MetricsCollector,
) (shell.RecordStore, error) {

	options := []jsonfileengine.Option{jsonfileengine.WithLogger(logger), jsonfileengine.WithMetrics(metrics)}
	if cfg.StrictDecoding {
		options = append(options, jsonfileengine.WithStrictDecoding())
	}

	store, err := jsonfileengine.NewRecordStore(cfg.DataDir, options...)
	if err != nil {
		return nil, err
	}

	return store, nil
}

func newPostgresRecordStore(
	ctx context.Context,
	cfg Config,
	logger recordstore.Logger,
	metrics recordstore.MetricsCollector,
) (shell.RecordStore, func(), error) {

	noop := func() {}

	options := []postgresengine.Option{
		postgresengine.WithTableName(cfg.Postgres.TableName),
		postgresengine.WithLogger(logger),
		postgresengine.WithMetrics(metrics),
	}
	if cfg.StrictDecoding {
		options = append(options, postgresengine.WithStrictDecoding())
	}

	var (
		store     postgresengine.RecordStore
		closeFunc func()
		err       error
	)

	switch cfg.Postgres.Adapter {
	case DBAdapterPGX:
		pool, poolErr := PostgresPGXPool(ctx, cfg.Postgres.DSN)
		if poolErr != nil {
			return nil, noop, poolErr
		}

		closeFunc = pool.Close
		store, err = postgresengine.NewRecordStoreFromPGXPool(pool, options...)

	case DBAdapterSQL:
		db, dbErr := PostgresSQLDB(ctx, cfg.Postgres.DSN)
		if dbErr != nil {
			return nil, noop, dbErr
		}

		closeFunc = func() { _ = db.Close() }
		store, err = postgresengine.NewRecordStoreFromSQLDB(db, options...)

	case DBAdapterSQLX:
		db, dbErr := PostgresSQLX(ctx, cfg.Postgres.DSN)
		if dbErr != nil {
			return nil, noop, dbErr
		}

		closeFunc = func() { _ = db.Close() }
		store, err = postgresengine.NewRecordStoreFromSQLX(db, options...)

	default:
		return nil, noop, ErrUnknownDBAdapter
	}

	if err != nil {
		closeFunc()
		return nil, noop, err
	}

	if ensureErr := store.EnsureTable(ctx); ensureErr != nil {
		closeFunc()
		return nil, noop, ensureErr
	}

	return store, closeFunc, nil
}
