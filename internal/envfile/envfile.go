// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package envfile keeps a single KEY=value line current inside a dotenv style
// file without disturbing the other lines.
package envfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
)

const (
	// DefaultPath is the env file, relative to the application root.
	DefaultPath = ".env"
	// DefaultKey is the variable the token is stored under.
	DefaultKey = "GITHUB_TOKEN"
)

// Writer upserts one key in an env file.
type Writer struct {
	path string
	key  string
	log  log.Interface
}

type Option func(*Writer)

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(w *Writer) { w.key = key }
}

// WithLogger sends progress messages to l instead of the global apex logger.
func WithLogger(l log.Interface) Option {
	return func(w *Writer) { w.log = l }
}

func New(path string, opts ...Option) *Writer {
	if path == "" {
		path = DefaultPath
	}
	w := &Writer{path: path, key: DefaultKey, log: log.Log}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Writer) Path() string {
	return w.path
}

// UpdateToken makes the file hold KEY=token.
//
// A missing or unreadable file is created holding just that line. A matching
// line with another value is replaced, later duplicates are dropped and the
// file is rewritten without adding a trailing newline. Matching lines that
// already carry token leave the file untouched. When no line matches the pair
// is appended.
func (w *Writer) UpdateToken(token string) error {
	pair := w.key + "=" + token
	ctx := w.log.WithField("path", w.path)

	data, err := os.ReadFile(w.path)
	if err != nil {
		if err := w.write([]byte(pair + "\n")); err != nil {
			return err
		}
		ctx.Infof("created env file with %s", w.key)
		return nil
	}

	prefix := w.key + "="
	lines := strings.Split(string(data), "\n")
	kept := lines[:0]
	found, updated := false, false
	for _, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			kept = append(kept, line)
			continue
		}
		if line == pair {
			ctx.Infof("%s already present", w.key)
		} else {
			updated = true
		}
		if found {
			continue
		}
		found = true
		kept = append(kept, pair)
	}

	switch {
	case updated:
		if err := w.write([]byte(strings.Join(kept, "\n"))); err != nil {
			return err
		}
		ctx.Infof("updated %s", w.key)
	case !found:
		content := string(data)
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		if err := w.write([]byte(content + pair + "\n")); err != nil {
			return err
		}
		ctx.Infof("saved %s", w.key)
	}
	return nil
}

func (w *Writer) write(data []byte) error {
	if err := os.WriteFile(w.path, data, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write env file: %w", err)
	}
	return nil
}
