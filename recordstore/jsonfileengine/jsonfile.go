package jsonfileengine

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/recordstore"
)

const (
	defaultFileMode        = fs.FileMode(0o644)
	defaultDirMode         = fs.FileMode(0o755)
	tempFilePattern        = ".*.tmp"
	logMsgReadFailed       = "failed to read collection file"
	logMsgMalformed        = "collection file is malformed, treating it as empty"
	logMsgCreateDirFailed  = "failed to create data directory"
	logMsgWriteFailed      = "failed to write collection file"
	logMsgRemoveTempFailed = "failed to remove temporary collection file"
	logMsgFileRead         = "read collection file"
	logMsgFileWritten      = "wrote collection file"
	logMsgOperation        = "recordstore operation: "
	logMsgCollectionLoaded = "collection loaded"
	logMsgCollectionSaved  = "collection saved"
	logAttrError           = "error"
	logAttrCollection      = "collection"
	logAttrPath            = "path"
	logAttrBytes           = "bytes"
	logAttrDocumentCount   = "document_count"
	logAttrDurationMS      = "duration_ms"
	errorTypeRead          = "read"
	errorTypeWrite         = "write"
	metricLabelErrorType   = "error_type"
	logAttrFileNotFound    = "file_not_found"
)

// RecordStore persists each collection as one JSON array file inside a data directory.
// Writes go to a temporary file in the same directory which is then renamed over the
// collection file, so a crash never leaves a truncated collection behind.
//
// RecordStore does not lock: callers that mutate concurrently must serialize their
// load-mutate-save cycles themselves.
type RecordStore struct {
	dataDir          string
	fileMode         fs.FileMode
	strictDecoding   bool
	logger           recordstore.Logger
	metricsCollector recordstore.MetricsCollector
}

// NewRecordStore creates a new RecordStore for the given data directory with optional configuration.
// The directory is created on the first save if it does not exist.
func NewRecordStore(dataDir string, options ...Option) (RecordStore, error) {
	if dataDir == "" {
		return RecordStore{}, recordstore.ErrEmptyDataDir
	}

	rs := RecordStore{
		dataDir:  dataDir,
		fileMode: defaultFileMode,
	}

	for _, option := range options {
		if err := option(&rs); err != nil {
			return RecordStore{}, err
		}
	}

	return rs, nil
}

// DataDir returns the directory holding the collection files.
func (rs RecordStore) DataDir() string {
	return rs.dataDir
}

// Path returns the file path backing the given collection.
func (rs RecordStore) Path(collection recordstore.Collection) string {
	return filepath.Join(rs.dataDir, collection.FileName())
}

// Load reads the complete collection.
//
// A missing file is an empty collection. A file that is not a JSON array of objects is an
// empty collection too, unless strict decoding is enabled, then recordstore.ErrMalformedCollection is returned.
func (rs RecordStore) Load(ctx context.Context, collection recordstore.Collection) (recordstore.Documents, error) {
	if err := collection.Validate(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	path := rs.Path(collection)

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		if errors.Is(readErr, fs.ErrNotExist) {
			rs.logDebug(logMsgFileRead, logAttrPath, path, logAttrFileNotFound, true)
			return make(recordstore.Documents, 0), nil
		}

		rs.logError(logMsgReadFailed, readErr, logAttrPath, path)
		rs.recordError(ctx, collection, recordstore.OperationLoad, errorTypeRead)

		return nil, errors.Join(recordstore.ErrLoadingCollectionFailed, readErr)
	}

	docs, decodeErr := recordstore.DecodeDocuments(data)
	if decodeErr != nil {
		recordstore.IncrementCounterMetric(
			ctx,
			rs.metricsCollector,
			recordstore.MetricMalformedCollection,
			recordstore.OperationLabels(collection, recordstore.OperationLoad),
		)

		if rs.strictDecoding {
			rs.logError(logMsgMalformed, decodeErr, logAttrPath, path)
			return nil, decodeErr
		}

		rs.logWarn(logMsgMalformed, logAttrPath, path, logAttrError, decodeErr.Error())

		return make(recordstore.Documents, 0), nil
	}

	duration := time.Since(start)
	rs.logDebug(logMsgFileRead, logAttrPath, path, logAttrBytes, len(data), logAttrDurationMS, toMilliseconds(duration))
	rs.logOperation(logMsgCollectionLoaded, logAttrCollection, string(collection), logAttrDocumentCount, len(docs))
	rs.recordSuccess(ctx, collection, recordstore.OperationLoad, recordstore.MetricLoadDuration, duration, len(docs))

	return docs, nil
}

// Save replaces the complete collection with the given documents.
func (rs RecordStore) Save(ctx context.Context, collection recordstore.Collection, docs recordstore.Documents) error {
	if err := collection.Validate(); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	path := rs.Path(collection)

	data, encodeErr := recordstore.EncodeDocuments(docs)
	if encodeErr != nil {
		rs.logError(logMsgWriteFailed, encodeErr, logAttrPath, path)
		return encodeErr
	}

	if mkdirErr := os.MkdirAll(rs.dataDir, defaultDirMode); mkdirErr != nil {
		rs.logError(logMsgCreateDirFailed, mkdirErr, logAttrPath, rs.dataDir)
		rs.recordError(ctx, collection, recordstore.OperationSave, errorTypeWrite)

		return errors.Join(recordstore.ErrSavingCollectionFailed, mkdirErr)
	}

	if writeErr := rs.writeAtomically(path, data); writeErr != nil {
		rs.logError(logMsgWriteFailed, writeErr, logAttrPath, path)
		rs.recordError(ctx, collection, recordstore.OperationSave, errorTypeWrite)

		return errors.Join(recordstore.ErrSavingCollectionFailed, writeErr)
	}

	duration := time.Since(start)
	rs.logDebug(logMsgFileWritten, logAttrPath, path, logAttrBytes, len(data), logAttrDurationMS, toMilliseconds(duration))
	rs.logOperation(logMsgCollectionSaved, logAttrCollection, string(collection), logAttrDocumentCount, len(docs))
	rs.recordSuccess(ctx, collection, recordstore.OperationSave, recordstore.MetricSaveDuration, duration, len(docs))

	return nil
}

// writeAtomically writes data into a temporary sibling file and renames it over path.
func (rs RecordStore) writeAtomically(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+tempFilePattern)
	if err != nil {
		return err
	}

	tmpPath := tmp.Name()

	cleanup := func() {
		if removeErr := os.Remove(tmpPath); removeErr != nil && !errors.Is(removeErr, fs.ErrNotExist) {
			rs.logWarn(logMsgRemoveTempFailed, logAttrPath, tmpPath, logAttrError, removeErr.Error())
		}
	}

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()

		return err
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()

		return err
	}

	if err = tmp.Close(); err != nil {
		cleanup()
		return err
	}

	if err = os.Chmod(tmpPath, rs.fileMode); err != nil {
		cleanup()
		return err
	}

	if err = os.Rename(tmpPath, path); err != nil {
		cleanup()
		return err
	}

	return nil
}
