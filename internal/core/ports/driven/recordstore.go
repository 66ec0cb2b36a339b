package driven

import (
	"context"

	"github.com/custodia-labs/ycard/internal/core/domain"
)

// RecordStore is a durable key-value store.
// Put replaces the whole value under key or leaves the previous value intact;
// a partially written value is never observable.
type RecordStore interface {
	// Put overwrites the value stored under key.
	Put(ctx context.Context, key string, value []byte) error

	// Get returns the value under key, or domain.ErrNotFound.
	Get(ctx context.Context, key string) (*domain.StoredValue, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// RecordVerifier checks that a stored value still has the yCard shape.
type RecordVerifier interface {
	Verify(data []byte) error
}
