package storage

import (
	"context"
	"database/sql"
	"fmt"

	"entnt-rental-backend/internal/logger"
)

// PostgresStore keeps the persisted documents in a single kv_store table,
// one row per key with a JSONB value. The relational engine is only a
// durable byte sink here; the document layout stays identical to the file
// backend.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	query := `CREATE TABLE IF NOT EXISTS kv_store (
	            key TEXT PRIMARY KEY,
	            value JSONB NOT NULL,
	            updated_on TIMESTAMPTZ NOT NULL DEFAULT now()
	          )`
	if _, err := db.Exec(query); err != nil {
		return nil, fmt.Errorf("failed to ensure kv_store table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`
	logger.DatabaseCall("SELECT", "kv_store", "key", key)

	var value []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "key", key)
		return nil, err
	}
	logger.DatabaseResult("SELECT", 1, nil, "key", key)
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_store (key, value, updated_on) VALUES ($1, $2, now())
	          ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_on = now()`
	logger.DatabaseCall("UPSERT", "kv_store", "key", key)

	res, err := s.db.ExecContext(ctx, query, key, value)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}
	logger.DatabaseResult("UPSERT", affected, err, "key", key)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_store WHERE key = $1`
	logger.DatabaseCall("DELETE", "kv_store", "key", key)

	res, err := s.db.ExecContext(ctx, query, key)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}
	logger.DatabaseResult("DELETE", affected, err, "key", key)
	return err
}

func (s *PostgresStore) Close() error { return s.db.Close() }
