package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/watch"
)

func TestWatcherReportsDebouncedChanges(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "form.html")
	ignored := filepath.Join(dir, "other.html")
	require.NoError(t, os.WriteFile(watched, []byte("<input>"), 0o600))

	w, err := watch.New([]string{watched}, watch.WithDebounce(200*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	var (
		mu    sync.Mutex
		calls []string
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(path string) error {
			mu.Lock()
			defer mu.Unlock()
			calls = append(calls, path)
			return nil
		})
	}()

	for i := range 3 {
		require.NoError(t, os.WriteFile(watched, []byte{byte('a' + i)}, 0o600))
	}
	require.NoError(t, os.WriteFile(ignored, []byte("x"), 0o600))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(calls) > 0
	}, 3*time.Second, 10*time.Millisecond)

	// A broken debounce would report the burst more than once.
	time.Sleep(300 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{watched}, calls)
}

func TestWatcherReportsPathsAsGiven(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("form.html", []byte("<input>"), 0o600))

	w, err := watch.New([]string{"form.html"}, watch.WithDebounce(50*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	got := make(chan string, 4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = w.Run(ctx, func(path string) error {
			got <- path
			return nil
		})
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "form.html"), []byte("<select>"), 0o600))
	select {
	case p := <-got:
		assert.Equal(t, "form.html", p)
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := watch.New([]string{filepath.Join(t.TempDir(), "nope", "form.html")})
	assert.Error(t, err)
}

func TestWatcherClosed(t *testing.T) {
	dir := t.TempDir()
	w, err := watch.New([]string{filepath.Join(dir, "f.yaml")})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Run(context.Background(), func(string) error { return nil }), watch.ErrClosed)
}
