package store

import (
	"context"
	"fmt"
)

// SealedTokenStorage encrypts tokens before handing them to the wrapped
// storage and decrypts them on the way out.
type SealedTokenStorage struct {
	next   TokenStorage
	sealer Sealer
}

var _ TokenStorage = (*SealedTokenStorage)(nil)

// NewSealedTokenStorage wraps next.
func NewSealedTokenStorage(next TokenStorage, sealer Sealer) *SealedTokenStorage {
	return &SealedTokenStorage{next: next, sealer: sealer}
}

// Get implements [TokenStorage]. A blob that cannot be opened is reported
// as [ErrUnsealToken] so the caller can discard it.
func (s *SealedTokenStorage) Get(ctx context.Context, username string) ([]byte, error) {
	blob, err := s.next.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	token, err := s.sealer.Open(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsealToken, err)
	}
	return token, nil
}

// Put implements [TokenStorage].
func (s *SealedTokenStorage) Put(ctx context.Context, username string, token []byte) error {
	blob, err := s.sealer.Seal(token)
	if err != nil {
		return fmt.Errorf("seal token: %w", err)
	}
	return s.next.Put(ctx, username, blob)
}

// Delete implements [TokenStorage].
func (s *SealedTokenStorage) Delete(ctx context.Context, username string) error {
	return s.next.Delete(ctx, username)
}
