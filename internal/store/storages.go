// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/crypto"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

// Storages bundles the token storage selected by configuration with the
// resources it holds open.
type Storages struct {
	Tokens TokenStorage

	closers []func() error
}

// NewStorages opens the backend named by cfg.Backend, applies migrations for
// SQL backends and wraps the result in a [SealedTokenStorage] when an
// encryption key is configured.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	s := &Storages{}

	tokens, err := s.openBackend(ctx, cfg, log)
	if err != nil {
		return nil, errors.Join(err, s.Close())
	}

	if cfg.EncryptionKey != "" {
		sealer, sealErr := crypto.NewTokenSealer(cfg.EncryptionKey)
		if sealErr != nil {
			return nil, errors.Join(sealErr, s.Close())
		}
		tokens = NewSealedTokenStorage(tokens, sealer)
		log.Info().Msg("stored tokens are encrypted at rest")
	}

	s.Tokens = tokens
	return s, nil
}

func (s *Storages) openBackend(ctx context.Context, cfg config.Storage, log *logger.Logger) (TokenStorage, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		return NewFileTokenStorage(cfg.TokenDir, log)

	case config.BackendSQLite, config.BackendPostgres:
		var (
			db  *DB
			err error
		)
		if cfg.Backend == config.BackendSQLite {
			db, err = NewConnectSQLite(ctx, cfg.DSN, log)
		} else {
			db, err = NewConnectPostgres(ctx, cfg.DSN, log)
		}
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db.Close)

		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			return nil, err
		}
		return NewSQLTokenStorage(db, log), nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		s.closers = append(s.closers, client.Close)

		if err := client.Ping(ctx).Err(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error connecting redis (ping)")
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return NewRedisTokenStorage(client, cfg.Redis.KeyPrefix, log), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// Close releases every resource opened by [NewStorages].
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
