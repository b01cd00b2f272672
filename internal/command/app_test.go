// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decord0455/reposcore/internal/meta"
)

type testRun struct {
	dir    string
	stdin  io.Reader
	stdout bytes.Buffer
}

func newTestRun(t *testing.T) *testRun {
	t.Helper()
	for _, env := range []string{
		"LOG_LEVEL", "REPOSCORE_CACHE_FILE", "REPOSCORE_ENV_FILE",
		"REPOSCORE_COLOR", "REPOSCORE_TEXT_COLOR",
	} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
	return &testRun{dir: t.TempDir(), stdin: strings.NewReader("")}
}

func (r *testRun) path(name string) string {
	return filepath.Join(r.dir, name)
}

func (r *testRun) run(args ...string) error {
	r.stdout.Reset()
	app := NewApp(&meta.Meta{
		Args:    args,
		Context: context.Background(),
		Stdin:   r.stdin,
		Stdout:  &r.stdout,
	})
	full := append([]string{"reposcore",
		"--cache-file", r.path("cache.json"),
		"--env-file", r.path(".env"),
	}, args...)
	return app.Run(context.Background(), full)
}

func TestBadgeCommand(t *testing.T) {
	r := newTestRun(t)

	require.NoError(t, r.run("badge", "42"))
	assert.Equal(t, "🌟 빛나는 기여자\n", r.stdout.String())

	require.NoError(t, r.run("badge", "100"))
	assert.Equal(t, "☀️ 태양 기여자\n", r.stdout.String())

	assert.Error(t, r.run("badge", "--", "-1"))
	assert.Error(t, r.run("badge", "lots"))
	assert.Error(t, r.run("badge"))

	require.NoError(t, r.run("badge", "--list"))
	lines := strings.Split(strings.TrimSpace(r.stdout.String()), "\n")
	assert.Len(t, lines, 6)
	assert.Equal(t, "0-9\t🌱 새싹 기여자", lines[0])
	assert.Equal(t, "100-∞\t☀️ 태양 기여자", lines[5])
}

func TestLogCommand(t *testing.T) {
	r := newTestRun(t)

	require.NoError(t, r.run("log", "--level", "info", "hello", "world"))
	assert.Contains(t, r.stdout.String(), "💡 [INFO] hello world")

	require.NoError(t, r.run("log", "quiet"))
	assert.Empty(t, r.stdout.String(), "LOG ranks below the default INFO threshold")

	require.NoError(t, r.run("--log-level", "log", "log", "loud"))
	assert.Contains(t, r.stdout.String(), "[LOG] loud")

	t.Setenv("LOG_LEVEL", "error")
	require.NoError(t, r.run("log", "--level", "warn", "suppressed"))
	assert.Empty(t, r.stdout.String())

	t.Setenv("LOG_LEVEL", "nonsense")
	require.NoError(t, r.run("log", "--level", "info", "shown"))
	assert.Contains(t, r.stdout.String(), "[INFO] shown", "unknown thresholds fall back to INFO")

	assert.Error(t, r.run("log", "--level", "loud", "x"))
	assert.Error(t, r.run("log"))
}

func TestCacheCommands(t *testing.T) {
	r := newTestRun(t)

	require.NoError(t, r.run("cache", "set", "scores.alice", "12"))
	require.NoError(t, r.run("cache", "set", "scores.bob", "105"))
	require.NoError(t, r.run("cache", "set", "updated", "today"))
	assert.Contains(t, r.stdout.String(), "[INFO] cache updated updated")

	raw, err := os.ReadFile(r.path("cache.json"))
	require.NoError(t, err)
	assert.Equal(t, `{
  "scores": {
    "alice": 12,
    "bob": 105
  },
  "updated": "today"
}`, string(raw))

	require.NoError(t, r.run("cache", "get", "scores.bob"))
	assert.Equal(t, "105\n", r.stdout.String())

	require.NoError(t, r.run("cache", "get", "scores"))
	assert.Equal(t, "{\n  \"alice\": 12,\n  \"bob\": 105\n}\n", r.stdout.String())

	assert.Error(t, r.run("cache", "get", "scores.carol"))

	require.NoError(t, r.run("cache", "show", "--output", "json"))
	assert.Contains(t, r.stdout.String(), `"updated": "today"`)

	require.NoError(t, r.run("cache", "show", "--sort=-key"))
	out := r.stdout.String()
	assert.Less(t, strings.Index(out, "updated"), strings.Index(out, "scores.alice"))

	assert.Error(t, r.run("cache", "show", "--output", "xml"))

	require.NoError(t, r.run("cache", "info"))
	assert.Contains(t, r.stdout.String(), "entries:  3")

	require.NoError(t, r.run("cache", "delete", "scores.alice"))
	assert.Error(t, r.run("cache", "delete", "scores.alice"))

	assert.Error(t, r.run("cache", "set", "only-key"))
	assert.Error(t, r.run("cache", "set", "updated.x", "1"), "updated is not an object")
}

func TestCacheDiffCommand(t *testing.T) {
	r := newTestRun(t)
	require.NoError(t, r.run("cache", "set", "scores.alice", "12"))

	other := r.path("other.json")
	require.NoError(t, os.WriteFile(other, []byte(`{"scores":{"alice":12}}`), 0o600))
	require.NoError(t, r.run("cache", "diff", other))
	assert.Contains(t, r.stdout.String(), "[INFO] cache matches")

	require.NoError(t, os.WriteFile(other, []byte(`{"scores":{"alice":20}}`), 0o600))
	require.NoError(t, r.run("cache", "diff", other))
	assert.Contains(t, r.stdout.String(), "alice")
	assert.Contains(t, r.stdout.String(), "20")

	assert.Error(t, r.run("cache", "diff", r.path("missing.json")))
	assert.Error(t, r.run("cache", "diff"))
}

func TestCacheCommands_CorruptFile(t *testing.T) {
	r := newTestRun(t)
	require.NoError(t, os.WriteFile(r.path("cache.json"), []byte("{oops"), 0o600))

	require.NoError(t, r.run("cache", "show", "--output", "json"))
	assert.Equal(t, "{}\n", r.stdout.String())

	require.NoError(t, r.run("cache", "set", "a", "1"))
	raw, err := os.ReadFile(r.path("cache.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(raw))
}

func TestTokenCommand(t *testing.T) {
	r := newTestRun(t)

	require.NoError(t, r.run("token", "abc"))
	assert.Contains(t, r.stdout.String(), "[INFO] created env file with GITHUB_TOKEN")

	raw, err := os.ReadFile(r.path(".env"))
	require.NoError(t, err)
	assert.Equal(t, "GITHUB_TOKEN=abc\n", string(raw))

	r.stdin = strings.NewReader("xyz\n")
	require.NoError(t, r.run("token"))
	assert.Contains(t, r.stdout.String(), "updated GITHUB_TOKEN")

	raw, err = os.ReadFile(r.path(".env"))
	require.NoError(t, err)
	assert.Equal(t, "GITHUB_TOKEN=xyz\n", string(raw))

	r.stdin = strings.NewReader("")
	assert.Error(t, r.run("token"))
}
