package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/showcase/internal/cms"
	"github.com/five82/showcase/internal/config"
)

var _ cms.TokenSource = (*Store)(nil)

// ErrEmptyToken is returned by Save for a blank token.
var ErrEmptyToken = errors.New("token is empty")

type file struct {
	Token string `toml:"token"`
}

// Store reads and writes the persisted bearer token.
type Store struct {
	path string
}

// NewStore returns a store backed by the TOML file at path.
func NewStore(path string) (*Store, error) {
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("credentials path: %w", err)
	}
	return &Store{path: resolved}, nil
}

// Path returns the resolved credentials file.
func (s *Store) Path() string {
	return s.path
}

// Token returns the stored token, or "" when none is saved. The file is read
// on every call so a token saved by another process takes effect on the next
// request.
func (s *Store) Token() (string, error) {
	bytes, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read credentials: %w", err)
	}
	var f file
	if err := toml.Unmarshal(bytes, &f); err != nil {
		return "", fmt.Errorf("parse credentials: %w", err)
	}
	return strings.TrimSpace(f.Token), nil
}

// Save replaces the stored token. The file is written owner-readable only.
func (s *Store) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	bytes, err := toml.Marshal(file{Token: token})
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	if err := os.WriteFile(s.path, bytes, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Clear removes the stored token. Clearing an absent token is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}
