// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals refresh tokens at rest.
//
// A blob produced by [TokenSealer.Seal] is laid out as
//
//	salt (16 bytes) ‖ nonce (12 bytes) ‖ AES-256-GCM ciphertext
//
// where the key is derived from the configured passphrase and the salt with
// Argon2id. Every blob carries its own salt, so sealing the same token twice
// gives different output.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

var (
	// ErrEmptyPassphrase is returned by [NewTokenSealer] for an empty key.
	ErrEmptyPassphrase = errors.New("encryption passphrase is empty")

	// ErrMalformedBlob is returned by Open for input too short to hold a
	// salt, a nonce and a tag.
	ErrMalformedBlob = errors.New("malformed sealed token")

	// ErrDecrypt is returned by Open when authentication fails, usually
	// because the passphrase changed.
	ErrDecrypt = errors.New("failed to decrypt sealed token")
)

// TokenSealer encrypts and decrypts tokens with a passphrase-derived key.
type TokenSealer struct {
	passphrase []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewTokenSealer constructs a [TokenSealer] with the Argon2id parameters
// recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewTokenSealer(passphrase string) (*TokenSealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	return &TokenSealer{
		passphrase:   []byte(passphrase),
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}, nil
}

// Seal encrypts plaintext under a fresh salt and nonce.
func (s *TokenSealer) Seal(plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.aead(salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	return gcm.Seal(blob, nonce, plaintext, nil), nil
}

// Open reverses [TokenSealer.Seal].
func (s *TokenSealer) Open(blob []byte) ([]byte, error) {
	if len(blob) < saltSize {
		return nil, ErrMalformedBlob
	}

	gcm, err := s.aead(blob[:saltSize])
	if err != nil {
		return nil, err
	}

	rest := blob[saltSize:]
	if len(rest) < gcm.NonceSize()+gcm.Overhead() {
		return nil, ErrMalformedBlob
	}

	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	return plaintext, nil
}

func (s *TokenSealer) aead(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(s.passphrase, salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
