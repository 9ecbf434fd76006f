package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenSealer_EmptyPassphrase(t *testing.T) {
	_, err := NewTokenSealer("")
	assert.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestTokenSealer_SealOpen(t *testing.T) {
	s, err := NewTokenSealer("correct horse")
	require.NoError(t, err)

	token := []byte("eyJhbGciOiJIUzI1NiJ9.refresh")
	blob, err := s.Seal(token)
	require.NoError(t, err)
	assert.False(t, bytes.Contains(blob, token))
	assert.Len(t, blob, saltSize+12+len(token)+16)

	got, err := s.Open(blob)
	require.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestTokenSealer_SaltPerBlob(t *testing.T) {
	s, err := NewTokenSealer("pass")
	require.NoError(t, err)

	a, err := s.Seal([]byte("same"))
	require.NoError(t, err)
	b, err := s.Seal([]byte("same"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestTokenSealer_WrongPassphrase(t *testing.T) {
	s1, err := NewTokenSealer("one")
	require.NoError(t, err)
	s2, err := NewTokenSealer("two")
	require.NoError(t, err)

	blob, err := s1.Seal([]byte("token"))
	require.NoError(t, err)

	_, err = s2.Open(blob)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestTokenSealer_Tampered(t *testing.T) {
	s, err := NewTokenSealer("pass")
	require.NoError(t, err)

	blob, err := s.Seal([]byte("token"))
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0xff

	_, err = s.Open(blob)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestTokenSealer_Malformed(t *testing.T) {
	s, err := NewTokenSealer("pass")
	require.NoError(t, err)

	for _, blob := range [][]byte{nil, make([]byte, saltSize-1), make([]byte, saltSize+12+15)} {
		_, err = s.Open(blob)
		assert.ErrorIs(t, err, ErrMalformedBlob)
	}
}
