package session

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"travelbook/internal/domain"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "token.json"))
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	s := newTestStore(t)

	if s.Authenticated() {
		t.Fatal("fresh store should not be authenticated")
	}
	if _, err := s.Token(); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}

	if err := s.Save("jwt-abc"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	tok, err := s.Token()
	if err != nil || tok != "jwt-abc" {
		t.Fatalf("Token() = %q, %v", tok, err)
	}
	if !s.Authenticated() {
		t.Fatal("expected authenticated after save")
	}

	// saved expiry is ~7 days out
	rec, err := s.load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ttl := time.Until(rec.ExpiresAt)
	if ttl < TokenTTL-time.Minute || ttl > TokenTTL+time.Minute {
		t.Fatalf("unexpected ttl %v", ttl)
	}
}

func TestFileStore_Expiry(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save("jwt-abc"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// move the clock past the 7-day window
	s.now = func() time.Time { return time.Now().Add(TokenTTL + time.Hour) }

	if s.Authenticated() {
		t.Fatal("expired token file should read as absent")
	}
	if _, err := s.Token(); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}

func TestFileStore_Clear(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save("jwt-abc"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.Authenticated() {
		t.Fatal("expected unauthenticated after clear")
	}
	// clearing twice is fine
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}
