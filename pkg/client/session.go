package client

import (
	"os"
	"path/filepath"
	"strings"
)

// SessionStore persists the issued token between runs. Unlike a browser's
// implicit storage, the load/save lifecycle is explicit.
type SessionStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileSessionStore keeps the token in a single file.
type FileSessionStore struct {
	Path string
}

// NewFileSessionStore stores the session at the given path.
func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{Path: path}
}

// Load returns the stored token, or empty when no session exists.
func (s *FileSessionStore) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token, creating parent directories as needed.
func (s *FileSessionStore) Save(token string) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

// Clear removes the stored session; a missing file is not an error.
func (s *FileSessionStore) Clear() error {
	err := os.Remove(s.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemorySessionStore holds the token in memory, mostly for tests.
type MemorySessionStore struct {
	token string
}

func (s *MemorySessionStore) Load() (string, error) { return s.token, nil }

func (s *MemorySessionStore) Save(token string) error {
	s.token = token
	return nil
}

func (s *MemorySessionStore) Clear() error {
	s.token = ""
	return nil
}
