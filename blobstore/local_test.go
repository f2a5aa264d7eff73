package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	data := []byte("csv export payload")

	w, err := store.Create(ctx, "exports/orders.csv")
	require.NoError(t, err)

	n, err := w.Write(data)
	require.NoError(t, err)
	require.Equal(t, len(data), n)

	// Not visible under its final name before Close.
	_, err = store.Open(ctx, "exports/orders.csv")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, w.Close())

	blob, err := store.Open(ctx, "exports/orders.csv")
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	got, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	require.Equal(t, data, got)

	buf := make([]byte, 6)
	n, err = blob.ReadAt(ctx, buf, 4)
	require.NoError(t, err)
	require.Equal(t, "export", string(buf[:n]))

	names, err := store.List(ctx, "exports/")
	require.NoError(t, err)
	require.Equal(t, []string{"exports/orders.csv"}, names)

	require.NoError(t, store.Delete(ctx, "exports/orders.csv"))
	require.NoError(t, store.Delete(ctx, "exports/orders.csv")) // absent is fine

	_, err = store.Open(ctx, "exports/orders.csv")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_ListSkipsTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "a.csv", []byte("x")))

	// A Create left open simulates a crashed export in progress.
	_, err = store.Create(ctx, "b.csv")
	require.NoError(t, err)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"a.csv"}, names)
}

func TestLocalStore_AbortedWriteLeavesNoTempFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	w, err := store.Create(ctx, "orders.csv")
	require.NoError(t, err)
	_, err = w.Write([]byte("partial"))
	require.NoError(t, err)

	// A failed write discards the temp file instead of leaking it into
	// the store root.
	w.(*localWritableBlob).abort()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestLocalStore_PutAtomic(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "nested/deep/file.csv", []byte("x")))

	_, err = os.Stat(filepath.Join(dir, "nested", "deep", "file.csv"))
	require.NoError(t, err)
}
