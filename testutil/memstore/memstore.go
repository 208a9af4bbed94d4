// Package memstore provides an in-memory record store for handler tests.
//
// Collections are kept in their encoded form, so every Load returns fresh documents
// exactly as a file or database round-trip would.
package memstore

import (
	"context"
	"errors"
	"sync"

	"github.com/AntonStoeckl/library-catalog-go/recordstore"
)

// ErrInjected is returned by operations configured to fail.
var ErrInjected = errors.New("injected record store failure")

// RecordStore is an in-memory implementation of the record store contract.
type RecordStore struct {
	mu       sync.Mutex
	data     map[recordstore.Collection][]byte
	loads    map[recordstore.Collection]int
	saves    map[recordstore.Collection]int
	failLoad map[recordstore.Collection]bool
	failSave map[recordstore.Collection]bool
}

// New creates an empty RecordStore.
func New() *RecordStore {
	return &RecordStore{
		data:     make(map[recordstore.Collection][]byte),
		loads:    make(map[recordstore.Collection]int),
		saves:    make(map[recordstore.Collection]int),
		failLoad: make(map[recordstore.Collection]bool),
		failSave: make(map[recordstore.Collection]bool),
	}
}

// Load returns the stored documents, or an empty collection if nothing was saved yet.
func (s *RecordStore) Load(ctx context.Context, collection recordstore.Collection) (recordstore.Documents, error) {
	if err := collection.Validate(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loads[collection]++

	if s.failLoad[collection] {
		return nil, errors.Join(recordstore.ErrLoadingCollectionFailed, ErrInjected)
	}

	return recordstore.DecodeDocuments(s.data[collection])
}

// Save replaces the stored documents.
func (s *RecordStore) Save(ctx context.Context, collection recordstore.Collection, docs recordstore.Documents) error {
	if err := collection.Validate(); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := recordstore.EncodeDocuments(docs)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failSave[collection] {
		return errors.Join(recordstore.ErrSavingCollectionFailed, ErrInjected)
	}

	s.saves[collection]++
	s.data[collection] = data

	return nil
}

// Raw returns the encoded content of a collection, nil if it was never saved.
func (s *RecordStore) Raw(collection recordstore.Collection) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]byte(nil), s.data[collection]...)
}

// SetRaw stores encoded content directly, for example malformed JSON.
func (s *RecordStore) SetRaw(collection recordstore.Collection, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[collection] = append([]byte(nil), data...)
}

// SaveCount returns how often a collection was saved successfully.
func (s *RecordStore) SaveCount(collection recordstore.Collection) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saves[collection]
}

// LoadCount returns how often a collection was loaded.
func (s *RecordStore) LoadCount(collection recordstore.Collection) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loads[collection]
}

// FailLoad makes every following Load of the collection fail.
func (s *RecordStore) FailLoad(collection recordstore.Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failLoad[collection] = true
}

// FailSave makes every following Save of the collection fail.
func (s *RecordStore) FailSave(collection recordstore.Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failSave[collection] = true
}
