package database

import (
	"context"
	"fmt"
	"time"

	"movie-theater/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to redis and pings it with a short timeout.
func NewRedisClient(ctx context.Context, config utils.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", config.Addr, err)
	}

	return client, nil
}
