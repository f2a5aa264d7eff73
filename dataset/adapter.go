package dataset

import (
	"fmt"
	"time"
)

// FromAny converts a Go value into a typed cell Value.
//
// This exists as an adapter layer for untyped input, e.g. decoded JSON
// documents or raw filter edits coming from a UI.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case string:
		return Text(x), nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		if x > uint64(1)<<62 {
			// Avoid silently truncating large values.
			return Value{}, fmt.Errorf("uint64 cell out of range: %d", x)
		}
		return Int(int64(x)), nil
	case bool:
		// Booleans have no column type of their own; they load as text.
		if x {
			return Text("true"), nil
		}
		return Text("false"), nil
	case time.Time:
		return Date(x), nil
	default:
		return Value{}, fmt.Errorf("unsupported cell value type %T", v)
	}
}

// RowFromAny converts an untyped record to a typed Row.
func RowFromAny(m map[string]any) (Row, error) {
	r := make(Row, len(m))
	for k, v := range m {
		vv, err := FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", k, err)
		}
		r[k] = vv
	}
	return r, nil
}

// DedupeColumns disambiguates duplicate column names by suffixing second and
// later occurrences with _1, _2, and so on. Every literal header name is
// reserved up front and taken suffixes are skipped, so a header like
// "A,A,A_1" stays collision-free. The returned slice is a copy.
func DedupeColumns(columns []string) []string {
	taken := make(map[string]bool, len(columns))
	for _, col := range columns {
		taken[col] = true
	}

	next := make(map[string]int, len(columns))
	out := make([]string, len(columns))
	for i, col := range columns {
		if next[col] == 0 {
			// First occurrence keeps its literal name.
			next[col] = 1
			out[i] = col
			continue
		}
		n := next[col]
		name := fmt.Sprintf("%s_%d", col, n)
		for taken[name] {
			n++
			name = fmt.Sprintf("%s_%d", col, n)
		}
		next[col] = n + 1
		taken[name] = true
		out[i] = name
	}
	return out
}
