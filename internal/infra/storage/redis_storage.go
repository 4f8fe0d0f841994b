package storage

import (
	"context"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisStorage keeps each key under a configurable prefix without expiry.
type redisStorage struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStorage creates a redis-backed SecureStorage.
func NewRedisStorage(client redis.UniversalClient, prefix string) service.SecureStorage {
	return &redisStorage{
		client: client,
		prefix: prefix,
	}
}

func (s *redisStorage) key(key string) string {
	return s.prefix + key
}

func (s *redisStorage) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "redis get %s", key)
	}

	return value, true, nil
}

func (s *redisStorage) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}

	return nil
}

func (s *redisStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return errors.Wrapf(err, "redis del %s", key)
	}

	return nil
}
