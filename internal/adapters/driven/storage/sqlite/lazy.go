package sqlite

import (
	"context"
	"sync"

	"github.com/custodia-labs/ycard/internal/core/domain"
	"github.com/custodia-labs/ycard/internal/core/ports/driven"
	"github.com/custodia-labs/ycard/internal/logger"
)

// Ensure LazyStore implements the interface.
var _ driven.RecordStore = (*LazyStore)(nil)

// LazyStore opens the SQLite database on first use, so commands that never
// touch storage do not create or migrate it. A failed open is retried on the
// next call.
type LazyStore struct {
	mu      sync.Mutex
	dataDir string
	store   *Store
}

// NewLazyStore returns a store for dataDir without opening it.
func NewLazyStore(dataDir string) *LazyStore {
	return &LazyStore{dataDir: dataDir}
}

func (l *LazyStore) open() (*Store, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.store != nil {
		return l.store, nil
	}
	store, err := NewStore(l.dataDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("storage: sqlite at %s", store.Path())
	l.store = store
	return store, nil
}

// Opened reports whether the database has been opened.
func (l *LazyStore) Opened() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store != nil
}

// Put opens the database if needed and stores value under key.
func (l *LazyStore) Put(ctx context.Context, key string, value []byte) error {
	store, err := l.open()
	if err != nil {
		return domain.NewStorageError("could not open record store", err)
	}
	return store.Put(ctx, key, value)
}

// Get opens the database if needed and reads key.
func (l *LazyStore) Get(ctx context.Context, key string) (*domain.StoredValue, error) {
	store, err := l.open()
	if err != nil {
		return nil, err
	}
	return store.Get(ctx, key)
}

// Delete opens the database if needed and removes key.
func (l *LazyStore) Delete(ctx context.Context, key string) error {
	store, err := l.open()
	if err != nil {
		return err
	}
	return store.Delete(ctx, key)
}

// Close closes the database if it was opened.
func (l *LazyStore) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.store == nil {
		return nil
	}
	err := l.store.Close()
	l.store = nil
	return err
}
