package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Dialect holds the statements that differ between database/sql backends.
type Dialect struct {
	Name   string
	Schema string
	Select string
	Upsert string
}

var (
	DialectSQLite = Dialect{
		Name: "sqlite",
		Schema: `
			CREATE TABLE IF NOT EXISTS local_storage (
				storage_key   TEXT PRIMARY KEY,
				storage_value TEXT NOT NULL,
				updated_at    DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
		Select: `SELECT storage_value FROM local_storage WHERE storage_key = ?`,
		Upsert: `
			INSERT INTO local_storage (storage_key, storage_value, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(storage_key) DO UPDATE
			SET storage_value = excluded.storage_value, updated_at = CURRENT_TIMESTAMP`,
	}

	DialectMySQL = Dialect{
		Name: "mysql",
		Schema: `
			CREATE TABLE IF NOT EXISTS local_storage (
				storage_key   VARCHAR(64) PRIMARY KEY,
				storage_value LONGTEXT NOT NULL,
				updated_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
			)`,
		Select: `SELECT storage_value FROM local_storage WHERE storage_key = ?`,
		Upsert: `
			INSERT INTO local_storage (storage_key, storage_value)
			VALUES (?, ?)
			ON DUPLICATE KEY UPDATE storage_value = VALUES(storage_value)`,
	}
)

type sqlRepository struct {
	db      *sql.DB
	dialect Dialect
	log     *zap.Logger
}

// NewSQLRepository creates the local_storage table if needed and returns a
// repository on top of it.
func NewSQLRepository(ctx context.Context, db *sql.DB, dialect Dialect, log *zap.Logger) (SnapshotRepository, error) {
	r := &sqlRepository{
		db:      db,
		dialect: dialect,
		log:     log.With(zap.String("repository", dialect.Name)),
	}

	if _, err := db.ExecContext(ctx, dialect.Schema); err != nil {
		r.log.Error("Failed to create local_storage table", zap.Error(err))
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return r, nil
}

func (r *sqlRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, r.dialect.Select, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		r.log.Error("Failed to read snapshot", zap.Error(err), zap.String("key", key))
		return "", false, fmt.Errorf("failed to read snapshot %q: %w", key, err)
	}

	return value, true, nil
}

func (r *sqlRepository) Set(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.Upsert, key, value); err != nil {
		r.log.Error("Failed to write snapshot", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("failed to write snapshot %q: %w", key, err)
	}

	r.log.Debug("Snapshot stored", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}
