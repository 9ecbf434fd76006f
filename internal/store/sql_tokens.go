// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

// SQLTokenStorage keeps tokens in the "tokens" table of a sqlite or
// PostgreSQL database.
type SQLTokenStorage struct {
	db      *DB
	builder sq.StatementBuilderType
	now     func() time.Time
	logger  *logger.Logger
}

var _ TokenStorage = (*SQLTokenStorage)(nil)

// NewSQLTokenStorage builds a storage over a migrated database.
func NewSQLTokenStorage(db *DB, log *logger.Logger) *SQLTokenStorage {
	log.Debug().Str("dialect", db.dialect).Msg("creating sql token storage")
	return &SQLTokenStorage{
		db:      db,
		builder: newStatementBuilder(db.dialect),
		now:     time.Now,
		logger:  log,
	}
}

// Get implements [TokenStorage].
func (s *SQLTokenStorage) Get(ctx context.Context, username string) ([]byte, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrEmptyUsername
	}

	query, args, err := s.buildGetTokenQuery(username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&token)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrTokenNotFound
	case err != nil:
		s.logger.Err(err).Str("func", "*SQLTokenStorage.Get").Msg("error selecting token")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return token, nil
}

// Put implements [TokenStorage] as an upsert on username.
func (s *SQLTokenStorage) Put(ctx context.Context, username string, token []byte) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}

	query, args, err := s.buildPutTokenQuery(username, token, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*SQLTokenStorage.Put").Msg("error saving token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Delete implements [TokenStorage].
func (s *SQLTokenStorage) Delete(ctx context.Context, username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}

	query, args, err := s.buildDeleteTokenQuery(username)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*SQLTokenStorage.Delete").Msg("error deleting token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
