// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets persists the completion API key in a dotenv file.
// The file holds a single KEY=value pair. It is created on first run and
// replaced wholesale whenever the key changes.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// ErrNoCredential is returned by Load when no non-blank secret is stored.
var ErrNoCredential = errors.New("no API secret stored")

// Store reads and writes one secret in a dotenv file.
type Store struct {
	fs     afero.Fs
	path   string
	key    string
	getenv func(string) string
}

// NewStore returns a Store for key in the dotenv file at path. getenv is
// consulted before the file; pass nil to ignore the environment.
func NewStore(fs afero.Fs, path, key string, getenv func(string) string) *Store {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	return &Store{fs: fs, path: path, key: key, getenv: getenv}
}

// NewOSStore returns a Store on the real file system that honours the
// process environment.
func NewOSStore(path, key string) *Store {
	return NewStore(afero.NewOsFs(), path, key, os.Getenv)
}

// Path returns the dotenv file location.
func (s *Store) Path() string { return s.path }

// Load returns the stored secret. The environment variable named by the
// store's key takes precedence over the file. A missing file or blank value
// yields ErrNoCredential.
func (s *Store) Load() (string, error) {
	if v := strings.TrimSpace(s.getenv(s.key)); v != "" {
		return v, nil
	}

	f, err := s.fs.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoCredential
		}
		return "", fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer f.Close()

	env, err := godotenv.Parse(f)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", s.path, err)
	}
	v := strings.TrimSpace(env[s.key])
	if v == "" {
		return "", ErrNoCredential
	}
	return v, nil
}

// Save replaces the file with a single KEY=value pair.
func (s *Store) Save(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("refusing to store an empty secret")
	}
	data, err := godotenv.Marshal(map[string]string{s.key: value})
	if err != nil {
		return fmt.Errorf("encoding secret: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, []byte(data+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}
