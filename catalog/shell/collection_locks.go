package shell

import (
	"slices"
	"sync"

	"github.com/AntonStoeckl/library-catalog-go/recordstore"
)

// CollectionLocks serializes load-mutate-save cycles per collection within one process.
// All handlers of one engine must share the same instance.
type CollectionLocks struct {
	mu    sync.Mutex
	locks map[recordstore.Collection]*sync.Mutex
}

// NewCollectionLocks creates an empty set of collection locks.
func NewCollectionLocks() *CollectionLocks {
	return &CollectionLocks{locks: make(map[recordstore.Collection]*sync.Mutex)}
}

// Lock acquires the locks of the given collections and returns the function releasing them.
// Locks are always taken in the order of recordstore.ManagedCollections (books before users),
// whatever the argument order, so two handlers can never deadlock each other.
func (l *CollectionLocks) Lock(collections ...recordstore.Collection) (unlock func()) {
	ordered := make([]recordstore.Collection, 0, len(collections))
	for _, c := range recordstore.ManagedCollections() {
		if slices.Contains(collections, c) {
			ordered = append(ordered, c)
		}
	}

	acquired := make([]*sync.Mutex, 0, len(ordered))
	for _, c := range ordered {
		m := l.lockFor(c)
		m.Lock()
		acquired = append(acquired, m)
	}

	return func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].Unlock()
		}
	}
}

func (l *CollectionLocks) lockFor(collection recordstore.Collection) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[collection]
	if !ok {
		m = &sync.Mutex{}
		l.locks[collection] = m
	}

	return m
}
