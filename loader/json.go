package loader

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hupe1980/tablefilter/codec"
	"github.com/hupe1980/tablefilter/dataset"
)

// decodeJSON accepts the record-oriented shapes the upload UI produces:
// a top-level array of objects, an object with a "records" or "data" array,
// or a single object (one-row dataset).
func decodeJSON(content []byte, c codec.Codec) ([]string, []dataset.Row, error) {
	var doc any
	if err := c.Unmarshal(content, &doc); err != nil {
		return nil, nil, fmt.Errorf("invalid JSON: %w", err)
	}

	var items []any
	switch x := doc.(type) {
	case []any:
		items = x
	case map[string]any:
		if recs, ok := x["records"].([]any); ok {
			items = recs
		} else if recs, ok := x["data"].([]any); ok {
			items = recs
		} else {
			items = []any{x}
		}
	default:
		return nil, nil, errors.New("unsupported JSON structure: expected an array of objects")
	}

	var (
		columns []string
		seen    = map[string]struct{}{}
		rows    = make([]dataset.Row, 0, len(items))
	)
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, nil, fmt.Errorf("record %d is not an object", i)
		}
		row, err := dataset.RowFromAny(obj)
		if err != nil {
			return nil, nil, fmt.Errorf("record %d: %w", i, err)
		}
		rows = append(rows, row)
		for k := range obj {
			if _, dup := seen[k]; !dup {
				seen[k] = struct{}{}
				columns = append(columns, k)
			}
		}
	}

	// Map iteration order is random; keep the column list stable.
	sortColumns(columns, items)

	return columns, rows, nil
}

// sortColumns orders columns by first appearance in the first record that
// contains them, falling back to lexicographic order for ties. JSON objects
// in Go decode to maps, so the original key order is unrecoverable; this
// keeps repeated loads of the same file deterministic.
func sortColumns(columns []string, items []any) {
	firstSeen := make(map[string]int, len(columns))
	for i, item := range items {
		obj, _ := item.(map[string]any)
		for k := range obj {
			if _, ok := firstSeen[k]; !ok {
				firstSeen[k] = i
			}
		}
	}
	sort.Slice(columns, func(i, j int) bool {
		a, b := columns[i], columns[j]
		if firstSeen[a] != firstSeen[b] {
			return firstSeen[a] < firstSeen[b]
		}
		return a < b
	})
}
