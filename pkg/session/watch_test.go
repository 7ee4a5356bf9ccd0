package session_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/session"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.jot"), "list")
	writeFile(t, filepath.Join(dir, "nested", "deep", "b.jot"), "list")
	writeFile(t, filepath.Join(dir, "nested", "c.txt"), "not a script")

	files, err := session.Expand([]string{
		filepath.Join(dir, "**", "*.jot"),
		filepath.Join(dir, "a.jot"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.jot"),
		filepath.Join(dir, "nested", "deep", "b.jot"),
	}, files)
}

func TestExpand_BadPattern(t *testing.T) {
	_, err := session.Expand([]string{"[unclosed"})
	assert.Error(t, err)
}

func TestWatcher_RerunsChangedScript(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "sub", "notes.jot")
	writeFile(t, script, "list\n")
	writeFile(t, filepath.Join(dir, "ignored.txt"), "x")

	var (
		mu   sync.Mutex
		runs []string
	)
	w := &session.Watcher{
		Patterns: []string{filepath.Join(dir, "**", "*.jot")},
		Debounce: 10 * time.Millisecond,
		Run: func(ctx context.Context, path string) error {
			mu.Lock()
			defer mu.Unlock()
			runs = append(runs, path)
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	// Give the watcher time to subscribe before writing.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "ignored.txt"), "y")
	writeFile(t, script, "list\nshow\n")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(runs) > 0
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	for _, r := range runs {
		assert.Equal(t, script, r)
	}
}

func TestWatcher_FollowsNewDirectories(t *testing.T) {
	dir := t.TempDir()

	var (
		mu   sync.Mutex
		runs []string
	)
	w := &session.Watcher{
		Patterns: []string{filepath.Join(dir, "**", "*.jot")},
		Debounce: 10 * time.Millisecond,
		Run: func(ctx context.Context, path string) error {
			mu.Lock()
			defer mu.Unlock()
			runs = append(runs, path)
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "later", "deeper"), 0o755))
	time.Sleep(100 * time.Millisecond)
	script := filepath.Join(dir, "later", "deeper", "notes.jot")
	writeFile(t, script, "list\n")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, r := range runs {
			if r == script {
				return true
			}
		}
		return false
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
