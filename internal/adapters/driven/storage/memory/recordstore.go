package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/ycard/internal/core/domain"
	"github.com/custodia-labs/ycard/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of driven.RecordStore.
// Values are copied on the way in and out.
type RecordStore struct {
	mu       sync.RWMutex
	records  map[string]domain.StoredValue
	writeErr error
	now      func() time.Time
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[string]domain.StoredValue),
		now:     time.Now,
	}
}

// FailWrites makes every subsequent Put return err. Pass nil to restore writes.
func (s *RecordStore) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

// Put stores value under key, replacing any previous value.
func (s *RecordStore) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return domain.NewStorageError("write cancelled", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeErr != nil {
		return domain.NewStorageError(s.writeErr.Error(), s.writeErr)
	}

	s.records[key] = domain.StoredValue{
		Value:     append([]byte(nil), value...),
		Revision:  uuid.NewString(),
		UpdatedAt: s.now().UTC(),
	}
	return nil
}

// Get returns the value stored under key, or domain.ErrNotFound.
func (s *RecordStore) Get(ctx context.Context, key string) (*domain.StoredValue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	rec.Value = append([]byte(nil), rec.Value...)
	return &rec, nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *RecordStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}
