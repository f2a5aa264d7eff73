package loader

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hupe1980/tablefilter/dataset"
)

// decodeExcel reads the first sheet of an xlsx workbook. The first row is
// the header; cell text stays text and is normalized by type inference like
// CSV input.
func decodeExcel(content []byte) ([]string, [][]dataset.Value, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrEmptyFile
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptyFile
	}

	header := rows[0]

	records := make([][]dataset.Value, 0, len(rows)-1)
	for _, rec := range rows[1:] {
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
