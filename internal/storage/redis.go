package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// redisStore implements Storage on a Redis instance. Slots map directly
// onto Redis string keys under a fixed prefix.
type redisStore struct {
	client *redis.Client
	logger zerolog.Logger
}

const redisKeyPrefix = "shopfront:"

// NewRedisStore creates a Redis-backed slot store and verifies
// connectivity with a ping.
func NewRedisStore(ctx context.Context, addr string, logger zerolog.Logger) (Storage, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}

	return &redisStore{
		client: client,
		logger: logger.With().Str("component", "redis-storage").Logger(),
	}, nil
}

// NewRedisStoreWithClient wraps an existing client; used by tests.
func NewRedisStoreWithClient(client *redis.Client, logger zerolog.Logger) Storage {
	return &redisStore{
		client: client,
		logger: logger.With().Str("component", "redis-storage").Logger(),
	}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read slot")
		return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to write slot")
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to delete slot")
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}
