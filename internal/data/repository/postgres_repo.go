package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-theater/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type postgresRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPostgresRepository(ctx context.Context, db database.PgxIface, log *zap.Logger) (SnapshotRepository, error) {
	r := &postgresRepository{
		db:  db,
		log: log.With(zap.String("repository", "postgres")),
	}

	query := `
		CREATE TABLE IF NOT EXISTS local_storage (
			storage_key   TEXT PRIMARY KEY,
			storage_value TEXT NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.Exec(ctx, query); err != nil {
		r.log.Error("Failed to create local_storage table", zap.Error(err))
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return r, nil
}

func (r *postgresRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT storage_value FROM local_storage WHERE storage_key = $1`

	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		r.log.Error("Failed to read snapshot", zap.Error(err), zap.String("key", key))
		return "", false, fmt.Errorf("failed to read snapshot %q: %w", key, err)
	}

	return value, true, nil
}

func (r *postgresRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO local_storage (storage_key, storage_value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (storage_key) DO UPDATE
		SET storage_value = EXCLUDED.storage_value, updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, key, value); err != nil {
		r.log.Error("Failed to write snapshot", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("failed to write snapshot %q: %w", key, err)
	}

	return nil
}
