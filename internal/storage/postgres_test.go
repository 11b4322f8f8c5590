package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostgresStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS kv_store").
		WillReturnResult(sqlmock.NewResult(0, 0))

	store, err := NewPostgresStore(db)
	require.NoError(t, err)
	return store, mock
}

func TestPostgresStore_Get(t *testing.T) {
	store, mock := newPostgresStore(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv_store").
			WithArgs(KeyAppData).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"users":[]}`)))

		data, err := store.Get(ctx, KeyAppData)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"users":[]}`), data)
	})

	t.Run("Missing key", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv_store").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		_, err := store.Get(ctx, "missing")
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("Query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv_store").
			WithArgs(KeySession).
			WillReturnError(errors.New("connection refused"))

		_, err := store.Get(ctx, KeySession)
		assert.Error(t, err)
	})
}

func TestPostgresStore_Set(t *testing.T) {
	store, mock := newPostgresStore(t)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs(KeyAppData, []byte(`{}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, store.Set(ctx, KeyAppData, []byte(`{}`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Delete(t *testing.T) {
	store, mock := newPostgresStore(t)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM kv_store").
		WithArgs(KeySession).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, store.Delete(ctx, KeySession))
	assert.NoError(t, mock.ExpectationsWereMet())
}
