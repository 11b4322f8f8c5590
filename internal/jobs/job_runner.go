package jobs

import (
	"context"
	"time"

	"entnt-rental-backend/internal/config"
	"entnt-rental-backend/internal/logger"
	"entnt-rental-backend/internal/storage"
)

// JobRunner executes scheduled maintenance work. Jobs only read the
// persisted documents; the data store stays the single writer of AppState.
type JobRunner struct {
	kv  storage.KeyValueStore
	cfg *config.Config
}

func NewJobRunner(kv storage.KeyValueStore, cfg *config.Config) *JobRunner {
	return &JobRunner{kv: kv, cfg: cfg}
}

func (r *JobRunner) Config() *config.Config {
	return r.cfg
}

// SnapshotState copies the current app-state document to a rolling backup
// key, so a corrupt primary write can be recovered by hand.
func (r *JobRunner) SnapshotState() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	data, err := r.kv.Get(ctx, storage.KeyAppData)
	if err == storage.ErrNotFound {
		logger.Debug("No app data to snapshot yet")
		return
	}
	if err != nil {
		logger.Error("Snapshot job failed to read app data", "error", err)
		return
	}

	backupKey := storage.KeyAppData + ".backup"
	if err := r.kv.Set(ctx, backupKey, data); err != nil {
		logger.Error("Snapshot job failed to write backup", "key", backupKey, "error", err)
		return
	}
	logger.Info("App data snapshot written", "key", backupKey, "bytes", len(data))
}
