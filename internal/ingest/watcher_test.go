package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectPaths drains the channel until want unique paths arrived or the
// deadline passed.
func collectPaths(t *testing.T, paths <-chan string, want int, deadline time.Duration) map[string]struct{} {
	t.Helper()
	got := make(map[string]struct{})
	timeout := time.After(deadline)
	for len(got) < want {
		select {
		case p, ok := <-paths:
			if !ok {
				return got
			}
			got[p] = struct{}{}
		case <-timeout:
			return got
		}
	}
	return got
}

func TestWatchRequiresRoots(t *testing.T) {
	_, _, err := Watch(t.Context(), WatchConfig{}, nil)
	assert.Error(t, err)
}

func TestWatchInitialScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "existing.txt", "already here")
	writeFile(t, dir, "ignored.docx", "wrong type")

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	paths, _, err := Watch(ctx, WatchConfig{Roots: []string{dir}, InitialScan: true}, nil)
	require.NoError(t, err)

	got := collectPaths(t, paths, 1, 2*time.Second)
	require.Len(t, got, 1)
	_, ok := got[filepath.Join(dir, "existing.txt")]
	assert.True(t, ok)
}

func TestWatchEmitsCreatedFiles(t *testing.T) {
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	paths, _, err := Watch(ctx, WatchConfig{Roots: []string{dir}}, nil)
	require.NoError(t, err)

	want := make(map[string]struct{})
	for i := 0; i < 3; i++ {
		p := writeFile(t, dir, fmt.Sprintf("doc%d.txt", i), "content")
		want[p] = struct{}{}
	}

	got := collectPaths(t, paths, len(want), 5*time.Second)
	for p := range want {
		_, ok := got[p]
		assert.True(t, ok, "missing %s", p)
	}
}

// A burst of files under a short debounce must neither lose events to a
// concurrent flush nor touch the paths channel after shutdown.
func TestWatchDebouncedBurst(t *testing.T) {
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	paths, _, err := Watch(ctx, WatchConfig{Roots: []string{dir}, Debounce: time.Millisecond}, nil)
	require.NoError(t, err)

	const n = 200
	want := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		p := writeFile(t, dir, fmt.Sprintf("burst%03d.txt", i), "x")
		want[p] = struct{}{}
	}

	got := collectPaths(t, paths, n, 10*time.Second)
	for p := range want {
		_, ok := got[p]
		assert.True(t, ok, "missing %s", p)
	}

	// shutdown right after a burst: a straggling debounce tick must not
	// panic on the closed channel
	writeFile(t, dir, "last.txt", "x")
	cancel()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-paths:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("paths channel did not close after cancel")
		}
	}
}

func TestWatchPicksUpNewDirectories(t *testing.T) {
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	paths, _, err := Watch(ctx, WatchConfig{Roots: []string{dir}}, nil)
	require.NoError(t, err)

	sub := filepath.Join(dir, "incoming")
	require.NoError(t, os.Mkdir(sub, 0o755))
	// give the watcher a beat to register the new directory
	time.Sleep(100 * time.Millisecond)
	p := writeFile(t, sub, "nested.txt", "content")

	got := collectPaths(t, paths, 1, 5*time.Second)
	_, ok := got[p]
	assert.True(t, ok)
}
