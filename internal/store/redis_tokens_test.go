package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

// newTestRedisStorage connects to the server named by REDIS_TEST_ADDRESS.
func newTestRedisStorage(t *testing.T) *RedisTokenStorage {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDRESS")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDRESS is not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis at %s is not reachable: %v", addr, err)
	}

	prefix := "session-keeper-test:" + t.Name() + ":"
	return NewRedisTokenStorage(client, prefix, logger.Nop())
}

func TestRedisTokenStorage_PutGetDelete(t *testing.T) {
	s := newTestRedisStorage(t)
	ctx := context.Background()
	t.Cleanup(func() { _ = s.Delete(context.Background(), "alice") })

	if _, err := s.Get(ctx, "alice"); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
	if err := s.Put(ctx, "alice", []byte("refresh")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "refresh" {
		t.Errorf("expected %q, got %q", "refresh", got)
	}
	if err = s.Delete(ctx, "alice"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err = s.Get(ctx, "alice"); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound after delete, got %v", err)
	}
}

func TestRedisTokenStorage_Key(t *testing.T) {
	s := NewRedisTokenStorage(nil, "session-keeper:tokens:", logger.Nop())

	key, err := s.key("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "session-keeper:tokens:alice" {
		t.Errorf("unexpected key %q", key)
	}
	if _, err = s.key(" "); !errors.Is(err, ErrEmptyUsername) {
		t.Errorf("expected ErrEmptyUsername, got %v", err)
	}
}

func TestRedisTokenStorage_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })
	s := NewRedisTokenStorage(client, "p:", logger.Nop())

	_, err := s.Get(context.Background(), "alice")
	if err == nil || errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected a connection error, got %v", err)
	}
}
