package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-session-keeper/internal/mock"
	"github.com/MKhiriev/go-session-keeper/internal/store"
)

func TestSealedTokenStorage_Put(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock.NewMockTokenStorage(ctrl)
	sealer := mock.NewMockSealer(ctrl)

	gomock.InOrder(
		sealer.EXPECT().Seal([]byte("plain")).Return([]byte("sealed"), nil),
		next.EXPECT().Put(gomock.Any(), "alice", []byte("sealed")).Return(nil),
	)

	s := store.NewSealedTokenStorage(next, sealer)
	require.NoError(t, s.Put(context.Background(), "alice", []byte("plain")))
}

func TestSealedTokenStorage_PutSealError(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock.NewMockTokenStorage(ctrl)
	sealer := mock.NewMockSealer(ctrl)

	sealer.EXPECT().Seal(gomock.Any()).Return(nil, assert.AnError)

	s := store.NewSealedTokenStorage(next, sealer)
	assert.ErrorIs(t, s.Put(context.Background(), "alice", []byte("plain")), assert.AnError)
}

func TestSealedTokenStorage_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock.NewMockTokenStorage(ctrl)
	sealer := mock.NewMockSealer(ctrl)

	next.EXPECT().Get(gomock.Any(), "alice").Return([]byte("sealed"), nil)
	sealer.EXPECT().Open([]byte("sealed")).Return([]byte("plain"), nil)

	s := store.NewSealedTokenStorage(next, sealer)
	got, err := s.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("plain"), got)
}

func TestSealedTokenStorage_GetErrors(t *testing.T) {
	t.Run("not found passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mock.NewMockTokenStorage(ctrl)
		sealer := mock.NewMockSealer(ctrl)

		next.EXPECT().Get(gomock.Any(), "bob").Return(nil, store.ErrTokenNotFound)

		_, err := store.NewSealedTokenStorage(next, sealer).Get(context.Background(), "bob")
		assert.ErrorIs(t, err, store.ErrTokenNotFound)
	})

	t.Run("unsealable blob", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mock.NewMockTokenStorage(ctrl)
		sealer := mock.NewMockSealer(ctrl)

		openErr := errors.New("message authentication failed")
		next.EXPECT().Get(gomock.Any(), "bob").Return([]byte("garbage"), nil)
		sealer.EXPECT().Open([]byte("garbage")).Return(nil, openErr)

		_, err := store.NewSealedTokenStorage(next, sealer).Get(context.Background(), "bob")
		assert.ErrorIs(t, err, store.ErrUnsealToken)
		assert.ErrorIs(t, err, openErr)
	})
}

func TestSealedTokenStorage_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock.NewMockTokenStorage(ctrl)
	sealer := mock.NewMockSealer(ctrl)

	next.EXPECT().Delete(gomock.Any(), "alice").Return(nil)

	require.NoError(t, store.NewSealedTokenStorage(next, sealer).Delete(context.Background(), "alice"))
}
