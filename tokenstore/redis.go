package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a Redis instance, for deployments where
// several workers share one service session (e.g. a kiosk fleet).
type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ Store = (*Redis)(nil)

// RedisOptions configures a Redis-backed store.
type RedisOptions struct {
	Client redis.UniversalClient
	// Prefix namespaces the storage keys. Defaults to "difakses:token:".
	Prefix string
	// TTL bounds how long a saved token lives without a refresh. Zero
	// means no expiry.
	TTL time.Duration
}

// NewRedis returns a Redis-backed store.
func NewRedis(opts RedisOptions) (*Redis, error) {
	if opts.Client == nil {
		return nil, errors.New("redis client is required")
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "difakses:token:"
	}
	return &Redis{client: opts.Client, prefix: prefix, ttl: opts.TTL}, nil
}

func (r *Redis) Load(ctx context.Context, key string) (string, error) {
	token, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

func (r *Redis) Save(ctx context.Context, key, token string) error {
	if err := r.client.Set(ctx, r.prefix+key, token, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *Redis) Clear(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, 0, len(keys))
	for _, key := range keys {
		prefixed = append(prefixed, r.prefix+key)
	}
	if err := r.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
