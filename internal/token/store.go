// Package token persists the bearer token under the user config dir.
// The token file is the only durable client-side state.
package token

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store reads and writes the persisted bearer token. Load returns an empty
// string when no token is persisted; callers treat that as "anonymous".
type Store interface {
	Load() (string, error)
	Save(tok string) error
	Clear() error
}

type tokenFile struct {
	AccessToken string `json:"access_token"`
}

// DefaultPath returns the token location, honoring XDG_CONFIG_HOME.
func DefaultPath() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "artscape", "token.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "artscape", "token.json")
}

// FileStore persists the token as a small JSON file with 0600 permissions.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath()
	}
	return &FileStore{path: path}
}

func (s *FileStore) Load() (string, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	return strings.TrimSpace(tf.AccessToken), nil
}

func (s *FileStore) Save(tok string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	b, err := json.Marshal(tokenFile{AccessToken: tok})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemStore is an in-memory Store for tests and embedded use.
type MemStore struct {
	mu  sync.Mutex
	tok string
}

func (s *MemStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tok, nil
}

func (s *MemStore) Save(tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = tok
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = ""
	return nil
}
