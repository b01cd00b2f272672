// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWriter(t *testing.T, content *string) (*Writer, *memory.Handler) {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	if content != nil {
		require.NoError(t, os.WriteFile(path, []byte(*content), 0o600))
	}

	h := memory.New()
	return New(path, WithLogger(&log.Logger{Handler: h, Level: log.DebugLevel})), h
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func messages(h *memory.Handler) []string {
	var out []string
	for _, e := range h.Entries {
		out = append(out, e.Message)
	}
	return out
}

func ptr(s string) *string { return &s }

func TestUpdateToken(t *testing.T) {
	tests := []struct {
		name     string
		existing *string
		token    string
		want     string
		wantLogs []string
	}{
		{
			name:     "creates missing file",
			token:    "abc",
			want:     "GITHUB_TOKEN=abc\n",
			wantLogs: []string{"created env file with GITHUB_TOKEN"},
		},
		{
			name:     "replaces stale value in place",
			existing: ptr("A=1\nGITHUB_TOKEN=abc\nB=2\n"),
			token:    "xyz",
			want:     "A=1\nGITHUB_TOKEN=xyz\nB=2\n",
			wantLogs: []string{"updated GITHUB_TOKEN"},
		},
		{
			name:     "rewrite adds no trailing newline",
			existing: ptr("GITHUB_TOKEN=abc"),
			token:    "xyz",
			want:     "GITHUB_TOKEN=xyz",
			wantLogs: []string{"updated GITHUB_TOKEN"},
		},
		{
			name:     "identical value leaves file alone",
			existing: ptr("A=1\nGITHUB_TOKEN=abc"),
			token:    "abc",
			want:     "A=1\nGITHUB_TOKEN=abc",
			wantLogs: []string{"GITHUB_TOKEN already present"},
		},
		{
			name:     "identical duplicates log once each",
			existing: ptr("GITHUB_TOKEN=abc\nGITHUB_TOKEN=abc\n"),
			token:    "abc",
			want:     "GITHUB_TOKEN=abc\nGITHUB_TOKEN=abc\n",
			wantLogs: []string{"GITHUB_TOKEN already present", "GITHUB_TOKEN already present"},
		},
		{
			name:     "update collapses duplicates",
			existing: ptr("GITHUB_TOKEN=old\nX=1\nGITHUB_TOKEN=older\n"),
			token:    "new",
			want:     "GITHUB_TOKEN=new\nX=1\n",
			wantLogs: []string{"updated GITHUB_TOKEN"},
		},
		{
			name:     "appends when absent",
			existing: ptr("A=1\n"),
			token:    "abc",
			want:     "A=1\nGITHUB_TOKEN=abc\n",
			wantLogs: []string{"saved GITHUB_TOKEN"},
		},
		{
			name:     "appends on its own line",
			existing: ptr("A=1"),
			token:    "abc",
			want:     "A=1\nGITHUB_TOKEN=abc\n",
			wantLogs: []string{"saved GITHUB_TOKEN"},
		},
		{
			name:     "appends to empty file",
			existing: ptr(""),
			token:    "abc",
			want:     "GITHUB_TOKEN=abc\n",
			wantLogs: []string{"saved GITHUB_TOKEN"},
		},
		{
			name:     "similar key is not a match",
			existing: ptr("GITHUB_TOKEN_OLD=abc\n"),
			token:    "abc",
			want:     "GITHUB_TOKEN_OLD=abc\nGITHUB_TOKEN=abc\n",
			wantLogs: []string{"saved GITHUB_TOKEN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := newTestWriter(t, tt.existing)

			require.NoError(t, w.UpdateToken(tt.token))
			assert.Equal(t, tt.want, readFile(t, w.Path()))
			assert.Equal(t, tt.wantLogs, messages(h))
		})
	}
}

func TestUpdateToken_Fields(t *testing.T) {
	w, h := newTestWriter(t, nil)
	require.NoError(t, w.UpdateToken("abc"))

	require.Len(t, h.Entries, 1)
	assert.Equal(t, log.InfoLevel, h.Entries[0].Level)
	assert.Equal(t, w.Path(), h.Entries[0].Fields.Get("path"))
}

func TestUpdateToken_CustomKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	w := New(path, WithKey("API_TOKEN"), WithLogger(&log.Logger{Handler: memory.New()}))

	require.NoError(t, w.UpdateToken("t1"))
	assert.Equal(t, "API_TOKEN=t1\n", readFile(t, path))
}

func TestUpdateToken_WriteError(t *testing.T) {
	// A path inside a missing directory cannot be created.
	path := filepath.Join(t.TempDir(), "missing", ".env")
	w := New(path, WithLogger(&log.Logger{Handler: memory.New()}))

	err := w.UpdateToken("abc")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write env file")
}

func TestNew_Defaults(t *testing.T) {
	w := New("")
	assert.Equal(t, DefaultPath, w.Path())
	assert.Equal(t, DefaultKey, w.key)
}
