package symbols

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTableFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.toml")
	writeTableFile(t, path, "[symbols]\nx = [\"ka\"]\n")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Stop()

	// Short debounce keeps the test fast.
	w.debouncePeriod = 50 * time.Millisecond

	reloaded := make(chan Table, 1)
	w.OnReload(func(table Table) error {
		select {
		case reloaded <- table:
		default:
		}
		return nil
	})
	w.Start()

	writeTableFile(t, path, "[symbols]\nx = [\"ka\", \"zu\"]\ny = [\"ri\"]\n")

	select {
	case table := <-reloaded:
		assert.Equal(t, 2, table.Len())
		candidates, ok := table.Lookup('x')
		require.True(t, ok)
		assert.Equal(t, []string{"ka", "zu"}, candidates)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload callback")
	}
}

func TestWatcherSkipsCallbacksOnInvalidTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.toml")
	writeTableFile(t, path, "[symbols]\nx = [\"ka\"]\n")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Stop()

	w.debouncePeriod = 50 * time.Millisecond

	reloaded := make(chan Table, 1)
	w.OnReload(func(table Table) error {
		select {
		case reloaded <- table:
		default:
		}
		return nil
	})
	w.Start()

	// A broken table must not reach the callbacks.
	writeTableFile(t, path, "[symbols]\nab = [\"x\"]\n")

	select {
	case <-reloaded:
		t.Fatal("callback fired for an invalid table")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherMissingFile(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
