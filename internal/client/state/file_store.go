package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists auth state as a JSON file, the client-side analog of
// browser local storage.
type FileStore struct {
	path string
}

// NewFileStore creates a file store at the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted auth state. A missing file is not an error.
func (s *FileStore) Load() (*AuthInfo, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read auth state file: %w", err)
	}

	var info AuthInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse auth state file: %w", err)
	}

	return &info, nil
}

// Save writes the auth state, creating the parent directory when needed
func (s *FileStore) Save(info *AuthInfo) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to encode auth state: %w", err)
	}

	// Session data, keep it owner-readable only
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write auth state file: %w", err)
	}

	return nil
}

// Clear removes the persisted auth state. A missing file is not an error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove auth state file: %w", err)
	}
	return nil
}
