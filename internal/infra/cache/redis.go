package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tembea/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}

	return client, cleanup, nil
}
