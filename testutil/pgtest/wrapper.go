package pgtest

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell/config"
	"github.com/AntonStoeckl/library-catalog-go/recordstore/postgresengine"
)

// EnvTestDSN names the database used by integration tests.
const EnvTestDSN = "LIBRARY_POSTGRES_TEST_DSN"

// Wrapper abstracts over the three connection types.
type Wrapper interface {
	RecordStore() postgresengine.RecordStore
	Exec(ctx context.Context, statement string) error
	Close()
}

// PGXPoolWrapper wraps pgxpool-based testing
type PGXPoolWrapper struct {
	pool *pgxpool.Pool
	rs   postgresengine.RecordStore
}

func (w *PGXPoolWrapper) RecordStore() postgresengine.RecordStore { return w.rs }

func (w *PGXPoolWrapper) Exec(ctx context.Context, statement string) error {
	_, err := w.pool.Exec(ctx, statement)
	return err
}

func (w *PGXPoolWrapper) Close() { w.pool.Close() }

// SQLDBWrapper wraps sql.DB-based testing
type SQLDBWrapper struct {
	db *sql.DB
	rs postgresengine.RecordStore
}

func (w *SQLDBWrapper) RecordStore() postgresengine.RecordStore { return w.rs }

func (w *SQLDBWrapper) Exec(ctx context.Context, statement string) error {
	_, err := w.db.ExecContext(ctx, statement)
	return err
}

func (w *SQLDBWrapper) Close() { _ = w.db.Close() }

// SQLXWrapper wraps sqlx.DB-based testing
type SQLXWrapper struct {
	db *sqlx.DB
	rs postgresengine.RecordStore
}

func (w *SQLXWrapper) RecordStore() postgresengine.RecordStore { return w.rs }

func (w *SQLXWrapper) Exec(ctx context.Context, statement string) error {
	_, err := w.db.ExecContext(ctx, statement)
	return err
}

func (w *SQLXWrapper) Close() { _ = w.db.Close() }

// CreateWrapper connects with the adapter from DB_ADAPTER, creates a fresh table and registers its cleanup.
func CreateWrapper(t testing.TB, options ...postgresengine.Option) Wrapper {
	t.Helper()

	dsn := os.Getenv(EnvTestDSN)
	if dsn == "" {
		t.Skipf("%s is not set", EnvTestDSN)
	}

	ctx := context.Background()
	tableName := "catalog_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	options = append([]postgresengine.Option{postgresengine.WithTableName(tableName)}, options...)

	var wrapper Wrapper

	switch adapter := strings.ToLower(os.Getenv(config.EnvDBAdapter)); adapter {
	case config.DBAdapterPGX, "":
		pool, err := config.PostgresPGXPool(ctx, dsn)
		require.NoError(t, err, "error connecting to DB pool in test setup")

		rs, err := postgresengine.NewRecordStoreFromPGXPool(pool, options...)
		require.NoError(t, err, "error creating record store in test setup")

		wrapper = &PGXPoolWrapper{pool: pool, rs: rs}

	case config.DBAdapterSQL:
		db, err := config.PostgresSQLDB(ctx, dsn)
		require.NoError(t, err, "error connecting to DB in test setup")

		rs, err := postgresengine.NewRecordStoreFromSQLDB(db, options...)
		require.NoError(t, err, "error creating record store in test setup")

		wrapper = &SQLDBWrapper{db: db, rs: rs}

	case config.DBAdapterSQLX:
		db, err := config.PostgresSQLX(ctx, dsn)
		require.NoError(t, err, "error connecting to DB in test setup")

		rs, err := postgresengine.NewRecordStoreFromSQLX(db, options...)
		require.NoError(t, err, "error creating record store in test setup")

		wrapper = &SQLXWrapper{db: db, rs: rs}

	default:
		t.Fatalf("unsupported %s: %s", config.EnvDBAdapter, adapter)
	}

	require.NoError(t, wrapper.RecordStore().EnsureTable(ctx), "error creating table in test setup")

	t.Cleanup(func() {
		_ = wrapper.Exec(context.Background(), `DROP TABLE IF EXISTS "`+tableName+`"`)
		wrapper.Close()
	})

	return wrapper
}
