package dataset

import (
	"fmt"
	"iter"
)

// ColumnType is the semantic type assigned to a column at load time.
// It determines which filter operators are legal and how values are
// parsed and compared.
type ColumnType uint8

const (
	// TypeText matches columns whose values are arbitrary strings.
	TypeText ColumnType = iota
	// TypeNumeric matches columns whose non-null values are all numbers.
	TypeNumeric
	// TypeDate matches columns whose non-null values are all dates.
	TypeDate
)

// String returns the string representation of the ColumnType.
func (t ColumnType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeNumeric:
		return "numeric"
	case TypeDate:
		return "date"
	default:
		return "unknown"
	}
}

// Row is an ordered mapping from column name to a scalar cell value.
// Ordering lives in the Dataset's column list; the row itself is keyed
// by column name.
type Row map[string]Value

// Clone creates a copy of the row.
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}
	clone := make(Row, len(r))
	for k, v := range r {
		clone[k] = v
	}
	return clone
}

// Dataset is an in-memory tabular dataset: an ordered sequence of rows
// with a fixed column list and a fixed per-column semantic type.
//
// Filtering only ever removes rows. Cell values and column definitions are
// immutable after construction; a filtered view shares rows with its parent.
type Dataset struct {
	columns []string
	types   map[string]ColumnType
	rows    []Row
}

// New creates a Dataset from columns and rows and infers each column's
// semantic type from its values (see Infer).
//
// Column names must be unique; loaders disambiguate duplicates before
// construction (see DedupeColumns).
func New(columns []string, rows []Row) (*Dataset, error) {
	types, err := Infer(columns, rows)
	if err != nil {
		return nil, err
	}
	return NewWithTypes(columns, types, rows)
}

// NewWithTypes creates a Dataset with a pre-inferred type assignment, e.g.
// when the loader already knows the column types. Cell values are normalized
// to the column type (text cells of a date column become date values).
func NewWithTypes(columns []string, types map[string]ColumnType, rows []Row) (*Dataset, error) {
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("duplicate column name %q", c)
		}
		seen[c] = struct{}{}
	}

	normalized := make([]Row, len(rows))
	for i, row := range rows {
		nr := make(Row, len(columns))
		for _, c := range columns {
			nr[c] = normalizeCell(row[c], types[c])
		}
		normalized[i] = nr
	}

	ct := make(map[string]ColumnType, len(columns))
	for _, c := range columns {
		ct[c] = types[c]
	}

	return &Dataset{
		columns: append([]string(nil), columns...),
		types:   ct,
		rows:    normalized,
	}, nil
}

// normalizeCell converts a raw cell to the canonical representation of the
// column's semantic type. Values that cannot be represented stay as loaded;
// missing cells become null.
func normalizeCell(v Value, t ColumnType) Value {
	if v.Kind == KindInvalid {
		return Null()
	}
	if v.Kind == KindNull {
		return v
	}

	switch t {
	case TypeNumeric:
		if v.IsNumber() {
			return v
		}
		if s, ok := v.AsText(); ok {
			if nv, ok := ParseNumber(s); ok {
				return nv
			}
		}
	case TypeDate:
		if v.Kind == KindDate {
			return Date(v.Time)
		}
		if s, ok := v.AsText(); ok {
			if t, ok := ParseDate(s); ok {
				return Date(t)
			}
		}
	case TypeText:
		if v.Kind == KindText {
			return v
		}
		return Text(v.Format())
	}
	return v
}

// Columns returns the ordered column names.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// ColumnType returns the semantic type of the named column.
func (d *Dataset) ColumnType(name string) (ColumnType, bool) {
	t, ok := d.types[name]
	return t, ok
}

// Types returns a copy of the column type assignment.
func (d *Dataset) Types() map[string]ColumnType {
	out := make(map[string]ColumnType, len(d.types))
	for k, v := range d.types {
		out[k] = v
	}
	return out
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.types[name]
	return ok
}

// NumRows returns the row count.
func (d *Dataset) NumRows() int { return len(d.rows) }

// NumColumns returns the column count.
func (d *Dataset) NumColumns() int { return len(d.columns) }

// Row returns the row at index i.
func (d *Dataset) Row(i int) Row { return d.rows[i] }

// Cell returns the value at row i, named column. Missing cells are null.
func (d *Dataset) Cell(i int, column string) Value {
	v, ok := d.rows[i][column]
	if !ok {
		return Null()
	}
	return v
}

// All returns an iterator over (index, row) pairs in original order.
func (d *Dataset) All() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i, r := range d.rows {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Select returns a new Dataset containing the rows at the given indices,
// in the order provided. Rows are shared, not copied; the column list and
// type assignment carry over unchanged.
func (d *Dataset) Select(indices []int) *Dataset {
	rows := make([]Row, 0, len(indices))
	for _, i := range indices {
		rows = append(rows, d.rows[i])
	}
	return &Dataset{
		columns: d.columns,
		types:   d.types,
		rows:    rows,
	}
}
