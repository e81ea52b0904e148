package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"travelbook/internal/domain"
)

// TokenTTL mirrors the 7-day cookie expiry the web client uses.
const TokenTTL = 7 * 24 * time.Hour

// FileStore persists the bearer token on disk. The file plays the role of
// the browser cookie: 0600 perms instead of secure/sameSite, stored
// expiry instead of the cookie lifetime. Token validity is never checked
// here; an expired JWT inside a live file is still "authenticated" until
// a protected call fails.
type FileStore struct {
	path string
	now  func() time.Time
}

type record struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// DefaultPath is ~/.travelbook/token.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".travelbook", "token.json"), nil
}

func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	rec := record{Token: token, ExpiresAt: s.now().Add(TokenTTL)}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) Token() (string, error) {
	rec, err := s.load()
	if err != nil {
		return "", err
	}
	return rec.Token, nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// Authenticated is a synchronous presence check, not a validity check.
func (s *FileStore) Authenticated() bool {
	_, err := s.load()
	return err == nil
}

func (s *FileStore) load() (record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return record{}, domain.ErrNoToken
		}
		return record{}, err
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return record{}, fmt.Errorf("corrupt token file %s: %w", s.path, err)
	}
	if rec.Token == "" || s.now().After(rec.ExpiresAt) {
		// the cookie would have been dropped by now
		return record{}, domain.ErrNoToken
	}
	return rec, nil
}
