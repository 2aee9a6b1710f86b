package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"promo-bonus-service/internal/infra/db"
	"promo-bonus-service/internal/infra/objstore"
	"promo-bonus-service/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// NewStore opens the object store selected by STORE_BACKEND.
func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (objstore.Store, error) {
	ctx := context.Background()
	prefix := cfg.Store.KeyPrefix

	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		logger.Warn("using in-memory object store, state is lost on restart")
		return objstore.NewMemoryStore(), nil

	case config.StoreBackendS3:
		store, err := objstore.NewS3Store(ctx, objstore.S3StoreConfig{
			Bucket:   cfg.S3.Bucket,
			Region:   cfg.S3.Region,
			Endpoint: cfg.S3.Endpoint,
			Prefix:   prefix,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("using S3 object store", "bucket", cfg.S3.Bucket, "region", cfg.S3.Region)
		return store, nil

	case config.StoreBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		logger.Info("using redis object store", "addr", cfg.Redis.Addr)
		return objstore.NewRedisStore(client, prefix), nil

	case config.StoreBackendPostgres:
		pool, cleanup, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				if cleanup != nil {
					cleanup()
				}
				return nil
			},
		})
		store := objstore.NewPostgresStore(pool, prefix)
		if err := store.EnsureSchema(ctx); err != nil {
			cleanup()
			return nil, err
		}
		logger.Info("using postgres object store", "host", cfg.DB.Host, "db", cfg.DB.DBName)
		return store, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
