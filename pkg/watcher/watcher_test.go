package watcher

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T) *Watcher {
	t.Helper()
	w, err := New(20*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	t.Cleanup(func() {
		cancel()
		_ = w.Close()
	})
	return w
}

func TestWatchDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.toml")
	require.NoError(t, os.WriteFile(path, []byte("radius = 0.5\n"), 0o600))

	w := newTestWatcher(t)
	var calls atomic.Int32
	var seen atomic.Value
	require.NoError(t, w.Watch(path, func(p string) {
		seen.Store(p)
		calls.Add(1)
	}))

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("radius = 0.6\n"), 0o600))
	}

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	abs, _ := filepath.Abs(path)
	assert.Equal(t, abs, seen.Load())
}

func TestWatchIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	w := newTestWatcher(t)
	var calls atomic.Int32
	require.NoError(t, w.Watch(path, func(string) { calls.Add(1) }))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o600))

	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestUnwatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	w := newTestWatcher(t)
	var calls atomic.Int32
	require.NoError(t, w.Watch(path, func(string) { calls.Add(1) }))
	require.NoError(t, w.Unwatch(path))
	require.NoError(t, w.Unwatch(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestWatchMissingDirectory(t *testing.T) {
	w := newTestWatcher(t)
	err := w.Watch(filepath.Join(t.TempDir(), "nope", "chart.toml"), func(string) {})
	assert.Error(t, err)
}
