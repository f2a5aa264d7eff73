// Package loader decodes uploaded CSV, Excel and JSON files into datasets.
//
// The loader validates the upload (extension whitelist, size cap), decodes
// the bytes, disambiguates duplicate column names and hands the result to
// the dataset package for type inference and normalization. All I/O happens
// here, before the filter core is ever invoked.
package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hupe1980/tablefilter/codec"
	"github.com/hupe1980/tablefilter/dataset"
)

// Format identifies the decoded file format.
type Format string

const (
	// FormatCSV is comma-separated values.
	FormatCSV Format = "csv"
	// FormatExcel is an xlsx workbook.
	FormatExcel Format = "excel"
	// FormatJSON is a JSON records document.
	FormatJSON Format = "json"
)

// DefaultMaxFileSize caps uploads at 50 MB.
const DefaultMaxFileSize = 50 << 20

var (
	// ErrUnsupportedFormat is returned for files outside the extension
	// whitelist (.csv, .xlsx, .json).
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrFileTooLarge is returned when the upload exceeds the size cap.
	ErrFileTooLarge = errors.New("file exceeds maximum size")
	// ErrEmptyFile is returned for empty files or files with no data rows
	// and no columns.
	ErrEmptyFile = errors.New("file contains no data")
)

// Info describes a successful load, for display.
type Info struct {
	FileName    string
	Format      Format
	SizeBytes   int
	RowCount    int
	ColumnCount int
}

type options struct {
	maxFileSize int
	codec       codec.Codec
}

// Option configures the loader.
type Option func(*options)

// WithMaxFileSize overrides the 50 MB upload cap.
func WithMaxFileSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxFileSize = n
		}
	}
}

// WithCodec overrides the JSON codec used for .json uploads.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxFileSize: DefaultMaxFileSize,
		codec:       codec.Default,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// Parse validates and decodes an uploaded file into a Dataset. The format is
// chosen by file extension; duplicate columns are disambiguated and column
// types inferred before the dataset is returned.
func Parse(filename string, content []byte, optFns ...Option) (*dataset.Dataset, Info, error) {
	o := applyOptions(optFns)

	format, err := detectFormat(filename)
	if err != nil {
		return nil, Info{}, err
	}
	if len(content) > o.maxFileSize {
		return nil, Info{}, fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, len(content), o.maxFileSize)
	}
	if len(content) == 0 {
		return nil, Info{}, fmt.Errorf("%w: %q is empty", ErrEmptyFile, filename)
	}

	var (
		columns []string
		rows    []dataset.Row
	)
	switch format {
	case FormatCSV:
		header, records, derr := decodeCSV(content)
		if derr != nil {
			return nil, Info{}, fmt.Errorf("parse %q: %w", filename, derr)
		}
		columns = dataset.DedupeColumns(header)
		rows = zipRows(columns, records)
	case FormatExcel:
		header, records, derr := decodeExcel(content)
		if derr != nil {
			return nil, Info{}, fmt.Errorf("parse %q: %w", filename, derr)
		}
		columns = dataset.DedupeColumns(header)
		rows = zipRows(columns, records)
	case FormatJSON:
		columns, rows, err = decodeJSON(content, o.codec)
		if err != nil {
			return nil, Info{}, fmt.Errorf("parse %q: %w", filename, err)
		}
	}
	if len(columns) == 0 {
		return nil, Info{}, fmt.Errorf("%w: %q", ErrEmptyFile, filename)
	}

	ds, err := dataset.New(columns, rows)
	if err != nil {
		return nil, Info{}, fmt.Errorf("build dataset from %q: %w", filename, err)
	}

	return ds, Info{
		FileName:    filename,
		Format:      format,
		SizeBytes:   len(content),
		RowCount:    ds.NumRows(),
		ColumnCount: ds.NumColumns(),
	}, nil
}

// zipRows pairs positional records with the (deduplicated) column list.
// Short records are padded with nulls, extra cells dropped.
func zipRows(columns []string, records [][]dataset.Value) []dataset.Row {
	rows := make([]dataset.Row, len(records))
	for i, rec := range records {
		row := make(dataset.Row, len(columns))
		for j, col := range columns {
			if j < len(rec) {
				row[col] = rec[j]
			} else {
				row[col] = dataset.Null()
			}
		}
		rows[i] = row
	}
	return rows
}

// detectFormat maps the file extension to a Format.
func detectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatExcel, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q (allowed: .csv, .xlsx, .json)", ErrUnsupportedFormat, filename)
	}
}
