// Package session holds the authenticated user's bearer token. The store is
// an explicit dependency of the API gateways rather than a global lookup, so
// the gateways stay testable without a real storage medium.
package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNoToken indicates no session exists; the caller must authenticate
	// before issuing requests.
	ErrNoToken = errors.New("session: no token")
	// ErrExpired indicates the backend rejected the stored token; it has
	// been invalidated and the caller must authenticate again.
	ErrExpired = errors.New("session: token expired")
)

// Store persists the session token under a single fixed key.
type Store interface {
	// Token returns the stored token, or ErrNoToken when none is stored.
	Token() (string, error)
	// Save replaces the stored token.
	Save(token string) error
	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear() error
}

const tokenFileName = "token"

// FileStore keeps the token in its own file under the data directory,
// readable only by the owner.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(dataDir string) *FileStore {
	return &FileStore{path: filepath.Join(dataDir, tokenFileName)}
}

func (s *FileStore) Token() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", ErrNoToken
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	token string
}

var _ Store = (*MemStore)(nil)

func NewMemStore(token string) *MemStore {
	return &MemStore{token: token}
}

func (s *MemStore) Token() (string, error) {
	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *MemStore) Save(token string) error {
	s.token = token
	return nil
}

func (s *MemStore) Clear() error {
	s.token = ""
	return nil
}
