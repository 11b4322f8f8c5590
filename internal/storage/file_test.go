package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("Get missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("Set then Get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeyAppData, []byte(`{"users":[]}`)))

		data, err := store.Get(ctx, KeyAppData)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"users":[]}`), data)
	})

	t.Run("Set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeyAppData, []byte(`{"users":null}`)))

		data, err := store.Get(ctx, KeyAppData)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"users":null}`), data)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, KeyAppData))
		_, err := store.Get(ctx, KeyAppData)
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("Delete missing key is not an error", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "never-existed"))
	})
}

func TestFileStore_IndependentKeys(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeySession, []byte(`{"id":"1"}`)))
	require.NoError(t, store.Set(ctx, KeyAppData, []byte(`{"equipment":[]}`)))

	session, err := store.Get(ctx, KeySession)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"1"}`), session)

	require.NoError(t, store.Delete(ctx, KeySession))
	data, err := store.Get(ctx, KeyAppData)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"equipment":[]}`), data)
}
