package client

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore persists the admin session token between runs, the way the
// site keeps it in browser local storage. Token returns an empty string
// when nothing is stored.
type TokenStore interface {
	Token() (string, error)
	Save(token string) error
	Clear() error
}

// DefaultTokenPath places the token file under the user config directory.
func DefaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "gulshan-laundry", "admin_token")
}

type FileTokenStore struct {
	Path string
}

// NewFileTokenStore builds a file-backed store; an empty path selects the
// default location.
func NewFileTokenStore(path string) *FileTokenStore {
	if path == "" {
		path = DefaultTokenPath()
	}
	return &FileTokenStore{Path: path}
}

func (s *FileTokenStore) Token() (string, error) {
	raw, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token), 0600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryTokenStore keeps the token in memory; used in tests and anywhere
// persistence across runs is unwanted.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryTokenStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
