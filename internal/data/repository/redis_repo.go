package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisRepository struct {
	rdb    redis.Cmdable
	prefix string
	log    *zap.Logger
}

// NewRedisRepository stores each snapshot under "<prefix>:<key>" without expiry.
func NewRedisRepository(rdb redis.Cmdable, prefix string, log *zap.Logger) SnapshotRepository {
	return &redisRepository{
		rdb:    rdb,
		prefix: prefix,
		log:    log.With(zap.String("repository", "redis")),
	}
}

func (r *redisRepository) key(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.rdb.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		r.log.Error("Failed to read snapshot", zap.Error(err), zap.String("key", key))
		return "", false, fmt.Errorf("failed to read snapshot %q: %w", key, err)
	}

	return value, true, nil
}

func (r *redisRepository) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		r.log.Error("Failed to write snapshot", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("failed to write snapshot %q: %w", key, err)
	}

	return nil
}
