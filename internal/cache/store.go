// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
)

// DefaultPath is the cache file, relative to the application root.
const DefaultPath = "cache.json"

// Store reads and writes the cache document at a fixed path.
type Store struct {
	path string
}

// Info describes the cache file on disk.
type Info struct {
	Path    string
	Size    int64
	ModTime time.Time
}

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the cached document, or nil when the file is missing,
// unreadable, not JSON or not an object. None of those are errors.
func (s *Store) Load() *OrderedMap {
	data, err := os.ReadFile(s.path)
	if err != nil {
		log.WithError(err).Debugf("cache %s not loaded", s.path)
		return nil
	}
	m, err := ParseNested(data)
	if err != nil {
		log.WithError(err).Debugf("cache %s ignored", s.path)
		return nil
	}
	return m
}

// Save replaces the cache file with m rendered as 2-space indented JSON.
func (s *Store) Save(m *OrderedMap) error {
	body, err := m.MarshalIndent()
	if err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}
	body = bytes.TrimSuffix(body, []byte("\n"))

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, body, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write cache: %w", err)
	}
	log.Debugf("cache written to %s", s.path)
	return nil
}

// Info stats the cache file.
func (s *Store) Info() (Info, error) {
	fi, err := os.Stat(s.path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to stat cache: %w", err)
	}
	return Info{Path: s.path, Size: fi.Size(), ModTime: fi.ModTime()}, nil
}
