package minio

import (
	"context"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-tablefilter"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	_, err = client.ListBuckets(ctx)
	if err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		require.NoError(t, err)
	}

	store := NewStore(client, bucket, "exports/")

	// Put and Open
	data := []byte("Status,Amount\nActive,100\n")
	err = store.Put(ctx, "orders.csv", data)
	require.NoError(t, err)

	blob, err := store.Open(ctx, "orders.csv")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, len(data))
	n, err := blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, data, buf)
	require.NoError(t, blob.Close())

	// List
	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "orders.csv")

	// Delete
	err = store.Delete(ctx, "orders.csv")
	require.NoError(t, err)

	_, err = store.Open(ctx, "orders.csv")
	require.Error(t, err)

	// Create (streaming)
	wb, err := store.Create(ctx, "stream.csv")
	require.NoError(t, err)
	_, err = wb.Write([]byte("Status,Amount\n"))
	require.NoError(t, err)
	err = wb.Close()
	require.NoError(t, err)

	blob2, err := store.Open(ctx, "stream.csv")
	require.NoError(t, err)
	assert.Equal(t, int64(14), blob2.Size())
	require.NoError(t, blob2.Close())

	_ = store.Delete(ctx, "stream.csv")
}
