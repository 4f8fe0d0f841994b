package storage

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// StorageParams holds dependencies for SecureStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSecureStorage creates a SecureStorage based on configuration
func NewSecureStorage(params StorageParams) (service.SecureStorage, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	switch cfg.Driver {
	case DriverFile, "":
		logger.Debug("Using file session storage", slog.String("path", cfg.Path))

		return NewFileStorage(cfg.Path), nil

	case DriverMemory:
		logger.Debug("Using in-memory session storage")

		return NewMemoryStorage(), nil

	case DriverRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("storage.redis.addr is required for redis driver")
		}
		logger.Debug("Using redis session storage", slog.String("addr", cfg.Redis.Addr))

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Debug("Closing redis session storage")

				return client.Close()
			},
		})

		return NewRedisStorage(client, cfg.Redis.Prefix), nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSecureStorage),
)
