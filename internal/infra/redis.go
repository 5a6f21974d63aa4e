package infra

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InitRedis connects to the shared cache and pings it once.
func InitRedis(ctx context.Context, addr string, db int, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	logger.Info("Redis connected", zap.String("addr", addr), zap.Int("db", db))
	return client, nil
}
