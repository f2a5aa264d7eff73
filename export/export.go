// Package export serializes filtered datasets to delimited text or JSON.
//
// The exporter writes the dataset exactly as filtered: original column
// order, original row order, no re-sorting. Output can be compressed and
// streamed to an io.Writer or a blobstore destination.
package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/tablefilter/blobstore"
	"github.com/hupe1980/tablefilter/codec"
	"github.com/hupe1980/tablefilter/dataset"
)

// Format selects the export serialization.
type Format string

const (
	// FormatCSV writes a header row plus one delimited line per row.
	FormatCSV Format = "csv"
	// FormatJSON writes an array of records.
	FormatJSON Format = "json"
)

// Compression selects the output compression.
type Compression string

const (
	// CompressionNone writes plain output.
	CompressionNone Compression = ""
	// CompressionGzip wraps the output in a gzip stream.
	CompressionGzip Compression = "gzip"
	// CompressionZstd wraps the output in a zstd stream.
	CompressionZstd Compression = "zstd"
	// CompressionLZ4 wraps the output in an lz4 frame.
	CompressionLZ4 Compression = "lz4"
)

// ErrUnknownFormat is returned for formats outside csv/json.
var ErrUnknownFormat = errors.New("unknown export format")

type options struct {
	format      Format
	compression Compression
	codec       codec.Codec
	delimiter   rune
}

// Option configures an export.
type Option func(*options)

// WithFormat selects csv (default) or json output.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithCompression wraps the output stream in the given compression.
func WithCompression(c Compression) Option {
	return func(o *options) { o.compression = c }
}

// WithCodec overrides the JSON codec for json exports.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithDelimiter overrides the CSV field delimiter (default comma).
func WithDelimiter(d rune) Option {
	return func(o *options) {
		if d != 0 {
			o.delimiter = d
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		format:      FormatCSV,
		compression: CompressionNone,
		codec:       codec.Default,
		delimiter:   ',',
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// Write serializes the dataset to w.
func Write(w io.Writer, ds *dataset.Dataset, optFns ...Option) error {
	o := applyOptions(optFns)

	cw, finish, err := compressedWriter(w, o.compression)
	if err != nil {
		return err
	}

	switch o.format {
	case FormatCSV:
		err = writeCSV(cw, ds, o.delimiter)
	case FormatJSON:
		err = writeJSON(cw, ds, o.codec)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, o.format)
	}
	if err != nil {
		_ = finish()
		return err
	}
	return finish()
}

// ToStore serializes the dataset into a named blob. The blob only becomes
// visible if the whole export succeeds.
func ToStore(ctx context.Context, store blobstore.BlobStore, name string, ds *dataset.Dataset, optFns ...Option) error {
	blob, err := store.Create(ctx, name)
	if err != nil {
		return fmt.Errorf("create blob %q: %w", name, err)
	}
	if err := Write(blob, ds, optFns...); err != nil {
		_ = blob.Close()
		return fmt.Errorf("export to %q: %w", name, err)
	}
	if err := blob.Close(); err != nil {
		return fmt.Errorf("finalize %q: %w", name, err)
	}
	return nil
}

// compressedWriter wraps w per the compression setting and returns the
// writer plus a finish func flushing any compressor state.
func compressedWriter(w io.Writer, c Compression) (io.Writer, func() error, error) {
	switch c {
	case CompressionNone:
		return w, func() error { return nil }, nil
	case CompressionGzip:
		zw := gzip.NewWriter(w)
		return zw, zw.Close, nil
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, err
		}
		return zw, zw.Close, nil
	case CompressionLZ4:
		zw := lz4.NewWriter(w)
		return zw, zw.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown compression %q", c)
	}
}

func writeCSV(w io.Writer, ds *dataset.Dataset, delimiter rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	columns := ds.Columns()
	if err := cw.Write(columns); err != nil {
		return err
	}

	record := make([]string, len(columns))
	for _, row := range ds.All() {
		for j, col := range columns {
			record[j] = row[col].Format()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, ds *dataset.Dataset, c codec.Codec) error {
	columns := ds.Columns()
	records := make([]map[string]any, 0, ds.NumRows())
	for _, row := range ds.All() {
		rec := make(map[string]any, len(columns))
		for _, col := range columns {
			rec[col] = cellJSON(row[col])
		}
		records = append(records, rec)
	}

	data, err := c.Marshal(records)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// cellJSON maps a cell to its JSON representation: numbers stay numbers,
// dates render as 2006-01-02, null stays null.
func cellJSON(v dataset.Value) any {
	switch v.Kind {
	case dataset.KindInt:
		return v.I64
	case dataset.KindFloat:
		return v.F64
	case dataset.KindText:
		return v.Str
	case dataset.KindDate:
		return v.Format()
	default:
		return nil
	}
}
