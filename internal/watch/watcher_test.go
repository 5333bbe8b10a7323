package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"webterm/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogV1 = `directories:
  /: [a.txt]
files:
  /a.txt: one
`

const catalogV2 = `directories:
  /: [a.txt, b.txt]
files:
  /a.txt: one
  /b.txt: two
`

func writeCatalog(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func TestNewRequiresFile(t *testing.T) {
	dir := t.TempDir()

	_, err := New(filepath.Join(dir, "missing.yaml"), nil)
	assert.Error(t, err)

	_, err = New(dir, nil)
	assert.Error(t, err)
}

func TestReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	writeCatalog(t, path, catalogV1)

	var got *catalog.Catalog
	w, err := New(path, func(c *catalog.Catalog) { got = c })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Reload())
	require.NotNil(t, got)
	assert.True(t, got.HasFile("/a.txt"))
	assert.Equal(t, 1, w.Status().Reloads)

	// a broken file keeps the previous catalog
	got = nil
	writeCatalog(t, path, "directories: [")
	assert.Error(t, w.Reload())
	assert.Nil(t, got)
	assert.Error(t, w.Status().LastError)
	assert.Equal(t, 1, w.Status().Reloads)
}

func TestRunPicksUpWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	writeCatalog(t, path, catalogV1)

	reloaded := make(chan *catalog.Catalog, 4)
	w, err := New(path, func(c *catalog.Catalog) { reloaded <- c }, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return w.Status().Running }, 2*time.Second, 10*time.Millisecond)
	// events for other files in the directory are ignored
	writeCatalog(t, filepath.Join(filepath.Dir(path), "other.yaml"), catalogV1)
	select {
	case <-reloaded:
		t.Fatal("unexpected reload for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}

	writeCatalog(t, path, catalogV2)

	select {
	case c := <-reloaded:
		assert.True(t, c.HasFile("/b.txt"))
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for catalog reload")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.False(t, w.Status().Running)
}

func TestCloseWithoutRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	writeCatalog(t, path, catalogV1)

	w, err := New(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	// a closed watcher's event loop ends immediately
	done := make(chan error, 1)
	go func() { done <- w.Run(context.Background()) }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run on a closed watcher did not return")
	}
	assert.False(t, w.Status().Running)
}
