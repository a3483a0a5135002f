package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/difakses/difakses-go/config"
	"github.com/difakses/difakses-go/tokenstore"
)

// NewTokenStore builds the token store named by the configuration. A
// redis backend is verified with a ping before it is handed out.
//
//nolint:ireturn // returning tokenstore.Store lets us pick memory, file, or redis at runtime.
func NewTokenStore(cfg config.TokenStoreConfig, logger *slog.Logger) (tokenstore.Store, error) {
	backend, err := config.ParseTokenStoreBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}

	switch backend {
	case config.TokenStoreMemory:
		return tokenstore.NewMemory(), nil

	case config.TokenStoreFile:
		if cfg.FilePath == "" {
			return nil, errors.New("file token store requires a path")
		}
		return tokenstore.NewFile(cfg.FilePath), nil

	case config.TokenStoreRedis:
		client, err := connectRedis(cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		return tokenstore.NewRedis(tokenstore.RedisOptions{Client: client})

	default:
		return nil, fmt.Errorf("unknown token store backend %q", cfg.Backend)
	}
}

//nolint:ireturn // returning redis.UniversalClient keeps client selection flexible.
func connectRedis(cfg config.RedisConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if logger != nil {
		logger.Info("redis connected", "addr", cfg.Addr)
	}

	return client, nil
}
