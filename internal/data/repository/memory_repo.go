package repository

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type memoryRepository struct {
	mu     sync.RWMutex
	values map[string]string
	log    *zap.Logger
}

// NewMemoryRepository keeps snapshots for the lifetime of the process only.
func NewMemoryRepository(log *zap.Logger) SnapshotRepository {
	return &memoryRepository{
		values: make(map[string]string),
		log:    log.With(zap.String("repository", "memory")),
	}
}

func (r *memoryRepository) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.values[key]
	return value, ok, nil
}

func (r *memoryRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	r.values[key] = value
	r.mu.Unlock()

	r.log.Debug("Snapshot stored", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}
