// Package cache provides Redis-backed implementations of short-lived
// domain stores.
package cache

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"pethub/config"
	"pethub/internal/domain/lifecycle"
	"pethub/internal/errors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates a Redis client managed by the fx lifecycle.
func New(params Params) (*redis.Client, error) {
	if params.Config.Redis == nil {
		return nil, errors.New("redis configuration is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
		PoolSize: params.Config.Redis.PoolSize,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.Info("Redis connected", slog.String("addr", params.Config.Redis.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
