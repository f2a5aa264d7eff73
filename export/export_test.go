package export

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tablefilter/blobstore"
	"github.com/hupe1980/tablefilter/codec"
	"github.com/hupe1980/tablefilter/dataset"
)

func exportDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(
		[]string{"Name", "Amount", "Created"},
		[]dataset.Row{
			{"Name": dataset.Text("Alice"), "Amount": dataset.Text("100"), "Created": dataset.Text("2024-01-15")},
			{"Name": dataset.Text("Bob"), "Amount": dataset.Text("250.5"), "Created": dataset.Null()},
		},
	)
	require.NoError(t, err)
	return ds
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, exportDataset(t)))

	want := "Name,Amount,Created\n" +
		"Alice,100,2024-01-15\n" +
		"Bob,250.5,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVDelimiter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, exportDataset(t), WithDelimiter(';')))
	assert.Contains(t, buf.String(), "Name;Amount;Created")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, exportDataset(t), WithFormat(FormatJSON)))

	var records []map[string]any
	require.NoError(t, codec.Default.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 2)

	assert.Equal(t, "Alice", records[0]["Name"])
	// Numbers stay numbers, dates render as 2006-01-02, nulls stay null.
	assert.EqualValues(t, 100, records[0]["Amount"])
	assert.Equal(t, "2024-01-15", records[0]["Created"])
	assert.Nil(t, records[1]["Created"])
}

func TestWriteCompression(t *testing.T) {
	plain := func(t *testing.T, c Compression) []byte {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, exportDataset(t), WithCompression(c)))
		return buf.Bytes()
	}

	t.Run("gzip", func(t *testing.T) {
		r, err := gzip.NewReader(bytes.NewReader(plain(t, CompressionGzip)))
		require.NoError(t, err)
		out, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Contains(t, string(out), "Alice,100,2024-01-15")
	})

	t.Run("zstd", func(t *testing.T) {
		r, err := zstd.NewReader(bytes.NewReader(plain(t, CompressionZstd)))
		require.NoError(t, err)
		defer r.Close()
		out, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Contains(t, string(out), "Alice,100,2024-01-15")
	})

	t.Run("lz4", func(t *testing.T) {
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(plain(t, CompressionLZ4))))
		require.NoError(t, err)
		assert.Contains(t, string(out), "Alice,100,2024-01-15")
	})
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, exportDataset(t), WithFormat(Format("xml")))
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestToStore(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	require.NoError(t, ToStore(ctx, store, "exports/out.csv", exportDataset(t)))

	blob, err := store.Open(ctx, "exports/out.csv")
	require.NoError(t, err)
	defer blob.Close()

	data, err := blobstore.ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Name,Amount,Created")
}

func TestToStoreEmptyView(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	ds := exportDataset(t).Select(nil)
	require.NoError(t, ToStore(ctx, store, "empty.csv", ds))

	blob, err := store.Open(ctx, "empty.csv")
	require.NoError(t, err)
	defer blob.Close()

	data, err := blobstore.ReadAll(ctx, blob)
	require.NoError(t, err)
	// Header only: an empty view is still a valid export.
	assert.Equal(t, "Name,Amount,Created\n", string(data))
}
