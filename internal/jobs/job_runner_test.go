package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entnt-rental-backend/internal/config"
	"entnt-rental-backend/internal/storage"
)

func TestSnapshotState(t *testing.T) {
	ctx := context.Background()
	kv, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	runner := NewJobRunner(kv, &config.Config{})

	t.Run("Nothing to snapshot on first boot", func(t *testing.T) {
		runner.SnapshotState()
		_, err := kv.Get(ctx, storage.KeyAppData+".backup")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Copies the app data document verbatim", func(t *testing.T) {
		doc := []byte(`{"equipment":[]}`)
		require.NoError(t, kv.Set(ctx, storage.KeyAppData, doc))

		runner.SnapshotState()

		backup, err := kv.Get(ctx, storage.KeyAppData+".backup")
		require.NoError(t, err)
		assert.Equal(t, doc, backup)
	})

	t.Run("Primary document is left untouched", func(t *testing.T) {
		primary, err := kv.Get(ctx, storage.KeyAppData)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"equipment":[]}`), primary)
	})
}
