package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

const snapshotSchema = `
	CREATE TABLE IF NOT EXISTS store_snapshots (
		key        TEXT PRIMARY KEY,
		payload    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)
`

type PostgresSnapshotStore struct {
	DB *sql.DB
}

func NewPostgresSnapshotStore(db *sql.DB) *PostgresSnapshotStore {
	return &PostgresSnapshotStore{DB: db}
}

func (s *PostgresSnapshotStore) EnsureSchema(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, snapshotSchema)
	return err
}

func (s *PostgresSnapshotStore) Load(ctx context.Context, key string, v any) (bool, error) {
	var payload []byte
	err := s.DB.QueryRowContext(ctx, `
		SELECT payload FROM store_snapshots WHERE key = $1
	`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load snapshot %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *PostgresSnapshotStore) Save(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO store_snapshots (key, payload, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = CURRENT_TIMESTAMP
	`, key, payload)
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", key, err)
	}
	return nil
}
