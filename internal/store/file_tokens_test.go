package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

func newTestFileStorage(t *testing.T) (*FileTokenStorage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "tokens")
	s, err := NewFileTokenStorage(dir, logger.Nop())
	if err != nil {
		t.Fatalf("NewFileTokenStorage: %v", err)
	}
	return s, dir
}

func TestFileTokenStorage_CreatesDirectory(t *testing.T) {
	_, dir := newTestFileStorage(t)

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat token dir: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("%s is not a directory", dir)
	}
}

func TestFileTokenStorage_PutGetDelete(t *testing.T) {
	s, dir := newTestFileStorage(t)
	ctx := context.Background()

	if _, err := s.Get(ctx, "alice"); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}

	if err := s.Put(ctx, "alice", []byte("first")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, "alice", []byte("second")); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}

	got, err := s.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("expected %q, got %q", "second", got)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "alice"))
	if err != nil {
		t.Fatalf("token file not named after the user: %v", err)
	}
	if string(raw) != "second" {
		t.Errorf("unexpected file content %q", raw)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected no temp files left, got %d entries", len(entries))
	}

	if err = s.Delete(ctx, "alice"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err = s.Get(ctx, "alice"); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound after delete, got %v", err)
	}
	if err = s.Delete(ctx, "alice"); err != nil {
		t.Fatalf("second Delete should be a no-op, got %v", err)
	}
}

func TestFileTokenStorage_InvalidUsernames(t *testing.T) {
	s, _ := newTestFileStorage(t)
	ctx := context.Background()

	tests := []struct {
		username string
		want     error
	}{
		{"", ErrEmptyUsername},
		{"   ", ErrEmptyUsername},
		{"..", ErrInvalidUsername},
		{"../evil", ErrInvalidUsername},
		{`a\b`, ErrInvalidUsername},
		{".token-123", ErrInvalidUsername},
	}

	for _, tt := range tests {
		if err := s.Put(ctx, tt.username, []byte("x")); !errors.Is(err, tt.want) {
			t.Errorf("Put(%q): expected %v, got %v", tt.username, tt.want, err)
		}
		if _, err := s.Get(ctx, tt.username); !errors.Is(err, tt.want) {
			t.Errorf("Get(%q): expected %v, got %v", tt.username, tt.want, err)
		}
		if err := s.Delete(ctx, tt.username); !errors.Is(err, tt.want) {
			t.Errorf("Delete(%q): expected %v, got %v", tt.username, tt.want, err)
		}
	}
}

func TestFileTokenStorage_ConcurrentAccounts(t *testing.T) {
	s, _ := newTestFileStorage(t)
	ctx := context.Background()

	users := []string{"a", "b", "c", "d", "e", "f"}
	var wg sync.WaitGroup
	for _, u := range users {
		wg.Add(1)
		go func(u string) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				if err := s.Put(ctx, u, []byte("token-"+u)); err != nil {
					t.Errorf("Put(%s): %v", u, err)
					return
				}
				if _, err := s.Get(ctx, u); err != nil {
					t.Errorf("Get(%s): %v", u, err)
					return
				}
			}
		}(u)
	}
	wg.Wait()

	for _, u := range users {
		got, err := s.Get(ctx, u)
		if err != nil {
			t.Fatalf("Get(%s): %v", u, err)
		}
		if string(got) != "token-"+u {
			t.Errorf("Get(%s) = %q", u, got)
		}
	}
}
