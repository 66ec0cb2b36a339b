package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ycard/internal/core/domain"
)

func TestRecordStore_PutAndGet(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, domain.RecordKey, []byte(`{"people":[]}`)))

	got, err := store.Get(ctx, domain.RecordKey)
	require.NoError(t, err)
	assert.Equal(t, `{"people":[]}`, string(got.Value))
	assert.NotEmpty(t, got.Revision)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestRecordStore_PutReplaces(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", []byte("one")))
	first, err := store.Get(ctx, "k")
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "k", []byte("two")))
	second, err := store.Get(ctx, "k")
	require.NoError(t, err)

	assert.Equal(t, "two", string(second.Value))
	assert.NotEqual(t, first.Revision, second.Revision)
}

func TestRecordStore_CopiesValues(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	buf := []byte("abc")
	require.NoError(t, store.Put(ctx, "k", buf))
	buf[0] = 'z'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	got.Value[1] = 'z'

	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again.Value))
}

func TestRecordStore_GetNotFound(t *testing.T) {
	store := NewRecordStore()

	_, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordStore_Delete(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordStore_FailWrites(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	store.FailWrites(errors.New("quota exceeded"))
	err := store.Put(ctx, "k", []byte("v"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageWriteFailed)
	var storageErr *domain.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "quota exceeded", storageErr.Reason)

	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	store.FailWrites(nil)
	assert.NoError(t, store.Put(ctx, "k", []byte("v")))
}

func TestRecordStore_CancelledContext(t *testing.T) {
	store := NewRecordStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Put(ctx, "k", []byte("v"))
	assert.ErrorIs(t, err, domain.ErrStorageWriteFailed)
	assert.ErrorIs(t, err, context.Canceled)
}
