// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

// FileTokenStorage keeps one file per username inside a directory. The file
// name is the username and the content is the raw token.
type FileTokenStorage struct {
	dir    string
	mu     sync.RWMutex
	logger *logger.Logger
}

var _ TokenStorage = (*FileTokenStorage)(nil)

// NewFileTokenStorage creates dir if needed.
func NewFileTokenStorage(dir string, log *logger.Logger) (*FileTokenStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create token directory: %w", err)
	}
	log.Debug().Str("dir", dir).Msg("using file token storage")
	return &FileTokenStorage{dir: dir, logger: log}, nil
}

// Get implements [TokenStorage].
func (s *FileTokenStorage) Get(_ context.Context, username string) ([]byte, error) {
	path, err := s.path(username)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("account", username).Msg("error reading token file")
		return nil, fmt.Errorf("read token file: %w", err)
	}
	return data, nil
}

// Put implements [TokenStorage]. The token is written to a temporary file
// and renamed over the previous one.
func (s *FileTokenStorage) Put(_ context.Context, username string, token []byte) error {
	path, err := s.path(username)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, ".token-*")
	if err != nil {
		return fmt.Errorf("create temp token file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(token); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write token file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync token file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close token file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace token file: %w", err)
	}
	return nil
}

// Delete implements [TokenStorage].
func (s *FileTokenStorage) Delete(_ context.Context, username string) error {
	path, err := s.path(username)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Err(err).Str("account", username).Msg("error deleting token file")
		return fmt.Errorf("delete token file: %w", err)
	}
	return nil
}

func (s *FileTokenStorage) path(username string) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", ErrEmptyUsername
	}
	if username == "." || username == ".." || strings.ContainsAny(username, `/\`) || strings.HasPrefix(username, ".token-") {
		return "", fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}
	return filepath.Join(s.dir, username), nil
}
