package recordstore

import (
	"errors"
	"slices"
)

var (
	// ErrUnknownCollection is returned for collection names no engine manages.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrMalformedCollection is returned in strict mode when stored content cannot be decoded.
	ErrMalformedCollection = errors.New("collection content is malformed")

	// ErrLoadingCollectionFailed is returned when reading a collection from the backing storage fails.
	ErrLoadingCollectionFailed = errors.New("loading collection failed")

	// ErrSavingCollectionFailed is returned when writing a collection to the backing storage fails.
	ErrSavingCollectionFailed = errors.New("saving collection failed")

	// ErrEncodingDocumentsFailed is returned when documents cannot be serialized.
	ErrEncodingDocumentsFailed = errors.New("encoding documents failed")

	// ErrNilDatabaseConnection is returned when a nil database connection is supplied.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrEmptyTableName is returned when an empty table name is supplied.
	ErrEmptyTableName = errors.New("table name must not be empty")

	// ErrEmptyDataDir is returned when an empty data directory is supplied.
	ErrEmptyDataDir = errors.New("data directory must not be empty")

	// ErrBuildingQueryFailed is returned when an SQL statement cannot be built.
	ErrBuildingQueryFailed = errors.New("building query failed")
)

// Collection names one of the persisted collections.
type Collection string

const (
	// Books is the catalog collection.
	Books Collection = "books"

	// Users is the collection of library members.
	Users Collection = "users"

	// Loans is a legacy collection name. No current operation reads or writes it.
	Loans Collection = "loans"
)

// ManagedCollections lists the collections engines read and write.
func ManagedCollections() []Collection {
	return []Collection{Books, Users}
}

// Validate returns ErrUnknownCollection if c is not a managed collection.
func (c Collection) Validate() error {
	if !slices.Contains(ManagedCollections(), c) {
		return errors.Join(ErrUnknownCollection, errors.New(string(c)))
	}

	return nil
}

// FileName returns the name of the JSON file backing this collection.
func (c Collection) FileName() string {
	return string(c) + ".json"
}

// Document is one flat record as it is stored on disk.
type Document = map[string]any

// Documents is an ordered collection of documents.
type Documents = []Document
