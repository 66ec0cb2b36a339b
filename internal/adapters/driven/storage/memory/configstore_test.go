package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("editor.theme", "light"))
	require.NoError(t, store.Set("logging.verbose", true))

	assert.Equal(t, "light", store.GetString("editor.theme"))
	assert.True(t, store.GetBool("logging.verbose"))

	val, ok := store.Get("editor.theme")
	assert.True(t, ok)
	assert.Equal(t, "light", val)
}

func TestConfigStore_Missing(t *testing.T) {
	store := NewConfigStore()

	_, ok := store.Get("nope")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("nope"))
	assert.False(t, store.GetBool("nope"))
}

func TestConfigStore_NoOps(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Empty(t, store.Path())
}
