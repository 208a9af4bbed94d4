package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/library-catalog-go/recordstore"
	"github.com/AntonStoeckl/library-catalog-go/recordstore/postgresengine/internal/adapters"
)

const (
	defaultTableName           = "catalog_collections"
	logMsgBuildSelectFailed    = "failed to build select query"
	logMsgBuildUpsertFailed    = "failed to build upsert query"
	logMsgDBQueryFailed        = "database query execution failed"
	logMsgDBExecFailed         = "database execution failed during collection save"
	logMsgCloseRowsFailed      = "failed to close database rows"
	logMsgScanRowFailed        = "failed to scan database row"
	logMsgMalformed            = "stored collection is malformed, treating it as empty"
	logMsgCollectionLoaded     = "collection loaded"
	logMsgCollectionSaved      = "collection saved"
	logMsgSQLExecuted          = "executed sql for: "
	logMsgOperation            = "recordstore operation: "
	logAttrError               = "error"
	logAttrQuery               = "query"
	logAttrCollection          = "collection"
	logAttrDocumentCount       = "document_count"
	logAttrDurationMS          = "duration_ms"
	logActionLoad              = "load"
	logActionSave              = "save"
	logActionCreateTable       = "create table"
	colName                    = "name"
	colDocuments               = "documents"
	colUpdatedAt               = "updated_at"
	dialectPostgres            = "postgres"
	castJsonb                  = "?::jsonb"
	exprNow                    = "NOW()"
	exprExcludedDocuments      = "EXCLUDED.documents"
	exprExcludedUpdatedAt      = "EXCLUDED.updated_at"
	errorTypeQuery             = "query"
	errorTypeScan              = "scan"
	errorTypeExec              = "exec"
	metricLabelErrorType       = "error_type"
	createTableStatementFormat = `CREATE TABLE IF NOT EXISTS %s (
    name       TEXT PRIMARY KEY,
    documents  JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
)`
)

// RecordStore keeps every collection as one JSONB row in a PostgreSQL table.
// Like the file engine it does no locking of its own.
type RecordStore struct {
	db               adapters.DBAdapter
	tableName        string
	strictDecoding   bool
	logger           recordstore.Logger
	metricsCollector recordstore.MetricsCollector
}

// NewRecordStoreFromPGXPool creates a new RecordStore using a pgx Pool with optional configuration.
func NewRecordStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (RecordStore, error) {
	if db == nil {
		return RecordStore{}, recordstore.ErrNilDatabaseConnection
	}

	return newRecordStore(adapters.NewPGXAdapter(db), options...)
}

// NewRecordStoreFromSQLDB creates a new RecordStore using a sql.DB with optional configuration.
func NewRecordStoreFromSQLDB(db *sql.DB, options ...Option) (RecordStore, error) {
	if db == nil {
		return RecordStore{}, recordstore.ErrNilDatabaseConnection
	}

	return newRecordStore(adapters.NewSQLAdapter(db), options...)
}

// NewRecordStoreFromSQLX creates a new RecordStore using a sqlx.DB with optional configuration.
func NewRecordStoreFromSQLX(db *sqlx.DB, options ...Option) (RecordStore, error) {
	if db == nil {
		return RecordStore{}, recordstore.ErrNilDatabaseConnection
	}

	return newRecordStore(adapters.NewSQLXAdapter(db), options...)
}

func newRecordStore(db adapters.DBAdapter, options ...Option) (RecordStore, error) {
	rs := RecordStore{
		db:        db,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(&rs); err != nil {
			return RecordStore{}, err
		}
	}

	return rs, nil
}

// TableName returns the name of the table holding the collections.
func (rs RecordStore) TableName() string {
	return rs.tableName
}

// CreateTableSQL returns the DDL statement for the collections table.
func (rs RecordStore) CreateTableSQL() string {
	return fmt.Sprintf(createTableStatementFormat, quoteIdentifier(rs.tableName))
}

// EnsureTable creates the collections table if it does not exist yet.
func (rs RecordStore) EnsureTable(ctx context.Context) error {
	statement := rs.CreateTableSQL()

	start := time.Now()
	_, execErr := rs.db.Exec(ctx, statement)
	rs.logQueryWithDuration(statement, logActionCreateTable, time.Since(start))

	if execErr != nil {
		rs.logError(logMsgDBExecFailed, execErr, logAttrQuery, statement)
		return errors.Join(recordstore.ErrSavingCollectionFailed, execErr)
	}

	return nil
}

// Load reads the complete collection. A missing row is an empty collection.
// Undecodable content is an empty collection too, unless strict decoding is enabled.
func (rs RecordStore) Load(ctx context.Context, collection recordstore.Collection) (recordstore.Documents, error) {
	if err := collection.Validate(); err != nil {
		return nil, err
	}

	sqlQuery, buildErr := rs.buildSelectQuery(collection)
	if buildErr != nil {
		rs.logError(logMsgBuildSelectFailed, buildErr)
		return nil, buildErr
	}

	start := time.Now()
	rows, queryErr := rs.db.Query(ctx, sqlQuery)
	rs.logQueryWithDuration(sqlQuery, logActionLoad, time.Since(start))

	if queryErr != nil {
		rs.logError(logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		rs.recordError(ctx, collection, recordstore.OperationLoad, errorTypeQuery)

		return nil, errors.Join(recordstore.ErrLoadingCollectionFailed, queryErr)
	}
	defer rs.closeRows(rows)

	raw, found, scanErr := rs.scanDocuments(rows)
	if scanErr != nil {
		rs.logError(logMsgScanRowFailed, scanErr)
		rs.recordError(ctx, collection, recordstore.OperationLoad, errorTypeScan)

		return nil, errors.Join(recordstore.ErrLoadingCollectionFailed, scanErr)
	}

	if !found {
		return make(recordstore.Documents, 0), nil
	}

	docs, decodeErr := recordstore.DecodeDocuments(raw)
	if decodeErr != nil {
		recordstore.IncrementCounterMetric(
			ctx,
			rs.metricsCollector,
			recordstore.MetricMalformedCollection,
			recordstore.OperationLabels(collection, recordstore.OperationLoad),
		)

		if rs.strictDecoding {
			rs.logError(logMsgMalformed, decodeErr, logAttrCollection, string(collection))
			return nil, decodeErr
		}

		rs.logWarn(logMsgMalformed, logAttrCollection, string(collection), logAttrError, decodeErr.Error())

		return make(recordstore.Documents, 0), nil
	}

	duration := time.Since(start)
	rs.logOperation(
		logMsgCollectionLoaded,
		logAttrCollection, string(collection),
		logAttrDocumentCount, len(docs),
		logAttrDurationMS, durationToMilliseconds(duration),
	)
	rs.recordSuccess(ctx, collection, recordstore.OperationLoad, recordstore.MetricLoadDuration, duration, len(docs))

	return docs, nil
}

// Save replaces the complete collection with the given documents.
func (rs RecordStore) Save(ctx context.Context, collection recordstore.Collection, docs recordstore.Documents) error {
	if err := collection.Validate(); err != nil {
		return err
	}

	data, encodeErr := recordstore.EncodeDocuments(docs)
	if encodeErr != nil {
		rs.logError(logMsgBuildUpsertFailed, encodeErr, logAttrCollection, string(collection))
		return encodeErr
	}

	sqlQuery, buildErr := rs.buildUpsertQuery(collection, data)
	if buildErr != nil {
		rs.logError(logMsgBuildUpsertFailed, buildErr, logAttrCollection, string(collection))
		return buildErr
	}

	start := time.Now()
	_, execErr := rs.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	rs.logQueryWithDuration(sqlQuery, logActionSave, duration)

	if execErr != nil {
		rs.logError(logMsgDBExecFailed, execErr, logAttrCollection, string(collection))
		rs.recordError(ctx, collection, recordstore.OperationSave, errorTypeExec)

		return errors.Join(recordstore.ErrSavingCollectionFailed, execErr)
	}

	rs.logOperation(
		logMsgCollectionSaved,
		logAttrCollection, string(collection),
		logAttrDocumentCount, len(docs),
		logAttrDurationMS, durationToMilliseconds(duration),
	)
	rs.recordSuccess(ctx, collection, recordstore.OperationSave, recordstore.MetricSaveDuration, duration, len(docs))

	return nil
}

// scanDocuments reads the documents column of the single row the select can return.
func (rs RecordStore) scanDocuments(rows adapters.DBRows) ([]byte, bool, error) {
	if !rows.Next() {
		return nil, false, rows.Err()
	}

	var raw []byte
	if err := rows.Scan(&raw); err != nil {
		return nil, false, err
	}

	return raw, true, rows.Err()
}

// closeRows safely closes database rows and logs any errors.
func (rs RecordStore) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		rs.logWarn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

func (rs RecordStore) buildSelectQuery(collection recordstore.Collection) (string, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(rs.tableName).
		Select(colDocuments).
		Where(goqu.C(colName).Eq(string(collection))).
		ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(recordstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (rs RecordStore) buildUpsertQuery(collection recordstore.Collection, data []byte) (string, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Insert(rs.tableName).
		Rows(goqu.Record{
			colName:      string(collection),
			colDocuments: goqu.L(castJsonb, string(data)),
			colUpdatedAt: goqu.L(exprNow),
		}).
		OnConflict(goqu.DoUpdate(colName, goqu.Record{
			colDocuments: goqu.L(exprExcludedDocuments),
			colUpdatedAt: goqu.L(exprExcludedUpdatedAt),
		})).
		ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(recordstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
