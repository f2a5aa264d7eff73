package dataset

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// dateLayouts are the accepted date formats, tried in order. ISO 8601 first,
// then US month-first, then day-first. A value is a date if any layout parses.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006", // MM/DD/YYYY
	"02/01/2006", // DD/MM/YYYY
}

// ParseDate parses s under the accepted date layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseNumber parses s as an int or a float Value.
func ParseNumber(s string) (Value, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f), true
	}
	return Value{}, false
}

// Infer assigns each column a semantic type by inspecting its non-null
// values: date if every value parses as a date, else numeric if every value
// parses as a number, else text. A column of all nulls defaults to text.
//
// Inference is a single deterministic pass and never fails for a column;
// columns are independent, so they are inspected concurrently.
func Infer(columns []string, rows []Row) (map[string]ColumnType, error) {
	types := make(map[string]ColumnType, len(columns))
	var mu sync.Mutex

	var g errgroup.Group
	for _, col := range columns {
		g.Go(func() error {
			t := inferColumn(col, rows)
			mu.Lock()
			types[col] = t
			mu.Unlock()
			return nil
		})
	}
	// Inference never errors; the group exists for the concurrency, not
	// the error fan-in.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return types, nil
}

func inferColumn(col string, rows []Row) ColumnType {
	allDates := true
	allNumbers := true
	nonNull := 0

	for _, row := range rows {
		v, ok := row[col]
		if !ok || v.Kind == KindNull || v.Kind == KindInvalid {
			continue
		}
		nonNull++

		switch v.Kind {
		case KindDate:
			allNumbers = false
		case KindInt, KindFloat:
			allDates = false
		case KindText:
			if allDates {
				if _, ok := ParseDate(v.Str); !ok {
					allDates = false
				}
			}
			if allNumbers {
				if _, ok := ParseNumber(v.Str); !ok {
					allNumbers = false
				}
			}
		}

		if !allDates && !allNumbers {
			return TypeText
		}
	}

	if nonNull == 0 {
		return TypeText
	}
	if allDates {
		return TypeDate
	}
	if allNumbers {
		return TypeNumeric
	}
	return TypeText
}
