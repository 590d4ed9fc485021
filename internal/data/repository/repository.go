package repository

import (
	"context"
	"fmt"

	"movie-theater/pkg/database"
	"movie-theater/pkg/utils"

	"go.uber.org/zap"
)

// Keys the store mirrors its persisted collections under.
const (
	KeyMovies      = "movies"
	KeyBookings    = "bookings"
	KeyUserProfile = "userProfile"
)

// SnapshotRepository is a string-valued key/value store, the server-side
// stand-in for browser local storage.
type SnapshotRepository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

type Repository struct {
	Snapshot SnapshotRepository
	closers  []func()
}

// Close releases the backend connections.
func (r *Repository) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

// NewRepository opens the snapshot backend named by config.Driver.
func NewRepository(ctx context.Context, config utils.StorageConfig, log *zap.Logger) (*Repository, error) {
	repo := &Repository{}

	switch config.Driver {
	case "memory":
		repo.Snapshot = NewMemoryRepository(log)

	case "sqlite", "mysql":
		driver, dsn, dialect := "sqlite3", config.SQLitePath, DialectSQLite
		if config.Driver == "mysql" {
			driver, dsn, dialect = "mysql", config.MySQLDSN, DialectMySQL
		}
		db, err := database.OpenSQL(ctx, driver, dsn)
		if err != nil {
			return nil, err
		}
		snapshot, err := NewSQLRepository(ctx, db, dialect, log)
		if err != nil {
			db.Close()
			return nil, err
		}
		repo.Snapshot = snapshot
		repo.closers = append(repo.closers, func() { db.Close() })

	case "postgres":
		db, err := database.InitDB(ctx, config.Postgres)
		if err != nil {
			return nil, err
		}
		snapshot, err := NewPostgresRepository(ctx, db, log)
		if err != nil {
			db.Close()
			return nil, err
		}
		repo.Snapshot = snapshot
		repo.closers = append(repo.closers, db.Close)

	case "redis":
		client, err := database.NewRedisClient(ctx, config.Redis)
		if err != nil {
			return nil, err
		}
		repo.Snapshot = NewRedisRepository(client, config.Redis.Prefix, log)
		repo.closers = append(repo.closers, func() { client.Close() })

	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.Driver)
	}

	log.Info("Snapshot storage ready", zap.String("driver", config.Driver))
	return repo, nil
}
