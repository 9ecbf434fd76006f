package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

// RedisTokenStorage keeps each token under "<prefix><username>" without
// expiry.
type RedisTokenStorage struct {
	client redis.Cmdable
	prefix string
	logger *logger.Logger
}

var _ TokenStorage = (*RedisTokenStorage)(nil)

// NewRedisTokenStorage wraps an existing client.
func NewRedisTokenStorage(client redis.Cmdable, prefix string, log *logger.Logger) *RedisTokenStorage {
	return &RedisTokenStorage{client: client, prefix: prefix, logger: log}
}

// Get implements [TokenStorage].
func (s *RedisTokenStorage) Get(ctx context.Context, username string) ([]byte, error) {
	key, err := s.key(username)
	if err != nil {
		return nil, err
	}

	token, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("account", username).Msg("error reading token from redis")
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return token, nil
}

// Put implements [TokenStorage].
func (s *RedisTokenStorage) Put(ctx context.Context, username string, token []byte) error {
	key, err := s.key(username)
	if err != nil {
		return err
	}
	if err = s.client.Set(ctx, key, token, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete implements [TokenStorage].
func (s *RedisTokenStorage) Delete(ctx context.Context, username string) error {
	key, err := s.key(username)
	if err != nil {
		return err
	}
	if err = s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *RedisTokenStorage) key(username string) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", ErrEmptyUsername
	}
	return s.prefix + username, nil
}
