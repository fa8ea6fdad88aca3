// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/privategxt-tui/internal/util"
)

// ErrNoToken indicates no session token is stored on disk.
var ErrNoToken = errors.New("no stored session token")

// Store persists the session token to a file.
//
// The token is the only credential the dashboard keeps; it is written
// atomically with 0600 permissions so a crash can never leave a corrupt
// or world-readable token file.
type Store struct {
	path string
}

// NewStore creates a token store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the stored token. Returns ErrNoToken if none exists.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Save writes the token to disk.
func (s *Store) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("refusing to store an empty token")
	}
	if err := util.AtomicWriteFile(s.path, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Clear removes the stored token. Clearing an absent token is not an
// error; logout must always succeed locally.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
