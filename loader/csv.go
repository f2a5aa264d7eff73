package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/hupe1980/tablefilter/dataset"
)

// decodeCSV reads the header row and positional records. Cell text stays
// text here; numeric/date conversion happens during dataset normalization.
// Empty cells load as null.
func decodeCSV(content []byte) ([]string, [][]dataset.Value, error) {
	if !utf8.Valid(content) {
		// Latin-1 fallback: every byte maps to the code point of the
		// same value, so the decode cannot fail.
		content = latin1ToUTF8(content)
	}
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF}) // BOM

	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1 // ragged rows are padded later

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, ErrEmptyFile
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	var records [][]dataset.Value
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row %d: %w", len(records)+2, err)
		}
		cells := make([]dataset.Value, len(rec))
		for i, field := range rec {
			if field == "" {
				cells[i] = dataset.Null()
			} else {
				cells[i] = dataset.Text(field)
			}
		}
		records = append(records, cells)
	}

	return header, records, nil
}

func latin1ToUTF8(b []byte) []byte {
	out := make([]byte, 0, len(b)*2)
	for _, c := range b {
		out = utf8.AppendRune(out, rune(c))
	}
	return out
}
