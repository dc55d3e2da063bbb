// Package credstore persists provider credentials as a plain JSON file.
//
// The record is deliberately unencrypted, mirroring the storefront's
// local-storage behavior. This is a documented limitation and not suitable
// for production secret handling.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"jetset/pkg/amadeus"
)

type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the stored credentials. A missing file is not an error; it
// returns (nil, nil) so callers can fall back to unconfigured behavior.
func (s *FileStore) Load() (*amadeus.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds amadeus.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	if creds.APIKey == "" || creds.APISecret == "" {
		return nil, nil
	}
	return &creds, nil
}

func (s *FileStore) Save(creds amadeus.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	return nil
}
