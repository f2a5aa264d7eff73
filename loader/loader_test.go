package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tablefilter/dataset"
)

func TestParseCSV(t *testing.T) {
	content := []byte("Name,Amount,Created\nAlice,100,2024-01-15\nBob,250.5,2024-02-01\n")

	ds, info, err := Parse("upload.csv", content)
	require.NoError(t, err)

	assert.Equal(t, FormatCSV, info.Format)
	assert.Equal(t, 2, info.RowCount)
	assert.Equal(t, 3, info.ColumnCount)
	assert.Equal(t, []string{"Name", "Amount", "Created"}, ds.Columns())

	amountType, _ := ds.ColumnType("Amount")
	assert.Equal(t, dataset.TypeNumeric, amountType)
	createdType, _ := ds.ColumnType("Created")
	assert.Equal(t, dataset.TypeDate, createdType)

	assert.Equal(t, dataset.Int(100), ds.Cell(0, "Amount"))
	assert.Equal(t, dataset.Float(250.5), ds.Cell(1, "Amount"))
}

func TestParseCSVDuplicateColumns(t *testing.T) {
	content := []byte("Name,Name,Name\na,b,c\n")

	ds, _, err := Parse("dup.csv", content)
	require.NoError(t, err)

	require.Equal(t, []string{"Name", "Name_1", "Name_2"}, ds.Columns())
	assert.Equal(t, dataset.Text("a"), ds.Cell(0, "Name"))
	assert.Equal(t, dataset.Text("b"), ds.Cell(0, "Name_1"))
	assert.Equal(t, dataset.Text("c"), ds.Cell(0, "Name_2"))
}

func TestParseCSVRaggedRows(t *testing.T) {
	content := []byte("a,b,c\n1,2\n")

	ds, _, err := Parse("ragged.csv", content)
	require.NoError(t, err)
	require.Equal(t, 1, ds.NumRows())

	// Short rows are padded with nulls.
	assert.True(t, ds.Cell(0, "c").IsNull())
}

func TestParseCSVEmptyCellsAreNull(t *testing.T) {
	content := []byte("a,b\n1,\n,2\n")

	ds, _, err := Parse("nulls.csv", content)
	require.NoError(t, err)
	assert.True(t, ds.Cell(0, "b").IsNull())
	assert.True(t, ds.Cell(1, "a").IsNull())
	// Column stays numeric despite the nulls.
	bt, _ := ds.ColumnType("b")
	assert.Equal(t, dataset.TypeNumeric, bt)
}

func TestParseCSVBOM(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Name\nAlice\n")...)

	ds, _, err := Parse("bom.csv", content)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name"}, ds.Columns())
}

func TestParseCSVLatin1Fallback(t *testing.T) {
	// "Café" with a Latin-1 encoded é (0xE9), not valid UTF-8.
	content := []byte{'N', 'a', 'm', 'e', '\n', 'C', 'a', 'f', 0xE9, '\n'}

	ds, _, err := Parse("latin1.csv", content)
	require.NoError(t, err)
	assert.Equal(t, dataset.Text("Café"), ds.Cell(0, "Name"))
}

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "array", content: `[{"Name":"Alice","Amount":100},{"Name":"Bob","Amount":200}]`},
		{name: "records wrapper", content: `{"records":[{"Name":"Alice","Amount":100},{"Name":"Bob","Amount":200}]}`},
		{name: "data wrapper", content: `{"data":[{"Name":"Alice","Amount":100},{"Name":"Bob","Amount":200}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, info, err := Parse("upload.json", []byte(tt.content))
			require.NoError(t, err)

			assert.Equal(t, FormatJSON, info.Format)
			require.Equal(t, 2, ds.NumRows())

			amountType, _ := ds.ColumnType("Amount")
			assert.Equal(t, dataset.TypeNumeric, amountType)
			name, _ := ds.Cell(0, "Name").AsText()
			assert.Equal(t, "Alice", name)
		})
	}
}

func TestParseJSONSingleObject(t *testing.T) {
	ds, _, err := Parse("one.json", []byte(`{"Name":"Alice"}`))
	require.NoError(t, err)
	assert.Equal(t, 1, ds.NumRows())
}

func TestParseJSONDeterministicColumns(t *testing.T) {
	content := []byte(`[{"b":1,"a":2,"c":3}]`)

	first, _, err := Parse("cols.json", content)
	require.NoError(t, err)
	for range 10 {
		again, _, err := Parse("cols.json", content)
		require.NoError(t, err)
		assert.Equal(t, first.Columns(), again.Columns())
	}
}

func TestParseRejections(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
		optFns   []Option
		wantErr  error
	}{
		{
			name:     "unsupported extension",
			filename: "data.parquet",
			content:  []byte("x"),
			wantErr:  ErrUnsupportedFormat,
		},
		{
			name:     "no extension",
			filename: "data",
			content:  []byte("x"),
			wantErr:  ErrUnsupportedFormat,
		},
		{
			name:     "empty file",
			filename: "empty.csv",
			content:  nil,
			wantErr:  ErrEmptyFile,
		},
		{
			name:     "too large",
			filename: "big.csv",
			content:  []byte("a,b\n1,2\n"),
			optFns:   []Option{WithMaxFileSize(4)},
			wantErr:  ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.filename, tt.content, tt.optFns...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseCaseInsensitiveExtension(t *testing.T) {
	_, info, err := Parse("DATA.CSV", []byte("a\n1\n"))
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, info.Format)
}

func TestParseInvalidJSON(t *testing.T) {
	_, _, err := Parse("bad.json", []byte("{not json"))
	require.Error(t, err)
}

func TestParseHeaderOnlyCSV(t *testing.T) {
	// A header with no data rows is a valid, empty dataset.
	ds, info, err := Parse("header.csv", []byte("a,b,c\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, info.RowCount)
	assert.Equal(t, 3, info.ColumnCount)
	assert.Equal(t, 0, ds.NumRows())
}
