// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenStorage persists refresh tokens keyed by username.
//
// Implementations must be safe for concurrent use by sessions of different
// accounts.
type TokenStorage interface {
	// Get returns the stored token or [ErrTokenNotFound].
	Get(ctx context.Context, username string) ([]byte, error)

	// Put stores token, replacing any previous value.
	Put(ctx context.Context, username string, token []byte) error

	// Delete removes the token. Deleting a missing token is not an error.
	Delete(ctx context.Context, username string) error
}

// Sealer encrypts tokens at rest.
type Sealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(blob []byte) ([]byte, error)
}

// ErrorClassificator decides whether a failed database call is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
