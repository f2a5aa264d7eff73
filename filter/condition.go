package filter

import (
	"fmt"
	"strings"

	"github.com/hupe1980/tablefilter/dataset"
)

// Condition is a single validated filter rule on one column.
//
// Exactly one of the value slots is populated, depending on the operator:
// Value for scalar operators, Values for OpIn, Min/Max for range operators.
// Conditions are produced by Validate and are immutable afterwards; the
// filter set owns them.
type Condition struct {
	Column   string
	Operator Operator
	Value    dataset.Value
	Values   []dataset.Value
	Min, Max dataset.Value
	Active   bool
}

// Validate checks a raw filter edit against the dataset's column types and
// normalizes its value(s) to the column type's canonical representation.
//
// raw may be a scalar (string, number, time.Time, dataset.Value), a slice of
// scalars for OpIn, or a two-element slice for range operators. Validation is
// atomic: it either returns a fully normalized Condition or rejects with
// *ErrInvalidCondition carrying the violated rule.
func Validate(ds *dataset.Dataset, column string, op Operator, raw any, policy ComparePolicy) (Condition, error) {
	reject := func(format string, args ...any) (Condition, error) {
		return Condition{}, &ErrInvalidCondition{
			Column:   column,
			Operator: op,
			Reason:   fmt.Sprintf(format, args...),
		}
	}

	colType, ok := ds.ColumnType(column)
	if !ok {
		return reject("unknown column")
	}
	if !Legal(colType, op) {
		return reject("operator not legal for %s column", colType)
	}

	cond := Condition{Column: column, Operator: op, Active: true}

	switch {
	case op == OpIn:
		values, ok := asSlice(raw)
		if !ok {
			return reject("multi-select requires a list of values")
		}
		if len(values) == 0 {
			return reject("multi-select requires at least one value")
		}
		cond.Values = make([]dataset.Value, len(values))
		for i, rv := range values {
			v, err := coerce(rv, colType, policy)
			if err != nil {
				return reject("value %d: %v", i, err)
			}
			cond.Values[i] = v
		}

	case op.isRange():
		bounds, ok := asSlice(raw)
		if !ok || len(bounds) != 2 {
			return reject("range requires exactly two values (min, max)")
		}
		min, err := coerce(bounds[0], colType, policy)
		if err != nil {
			return reject("min: %v", err)
		}
		max, err := coerce(bounds[1], colType, policy)
		if err != nil {
			return reject("max: %v", err)
		}
		if min.Greater(max) {
			return reject("min must not exceed max")
		}
		cond.Min, cond.Max = min, max

	default:
		v, err := coerce(raw, colType, policy)
		if err != nil {
			return reject("%v", err)
		}
		cond.Value = v
	}

	return cond, nil
}

// coerce normalizes a raw scalar to the column type's canonical Value.
func coerce(raw any, t dataset.ColumnType, policy ComparePolicy) (dataset.Value, error) {
	v, err := dataset.FromAny(raw)
	if err != nil {
		return dataset.Value{}, err
	}
	if v.IsNull() {
		return dataset.Value{}, fmt.Errorf("null is not a valid filter value")
	}

	switch t {
	case dataset.TypeText:
		s, ok := v.AsText()
		if !ok {
			s = v.Format()
		}
		if policy.TrimSpace {
			s = strings.TrimSpace(s)
		}
		return dataset.Text(s), nil

	case dataset.TypeNumeric:
		if v.IsNumber() {
			return v, nil
		}
		if s, ok := v.AsText(); ok {
			if nv, ok := dataset.ParseNumber(s); ok {
				return nv, nil
			}
		}
		return dataset.Value{}, fmt.Errorf("%q is not a number", v.Format())

	case dataset.TypeDate:
		if v.Kind == dataset.KindDate {
			return dataset.Date(v.Time), nil
		}
		if s, ok := v.AsText(); ok {
			if t, ok := dataset.ParseDate(s); ok {
				return dataset.Date(t), nil
			}
		}
		return dataset.Value{}, fmt.Errorf("%q is not a date in an accepted format", v.Format())
	}

	return dataset.Value{}, fmt.Errorf("unsupported column type")
}

// asSlice widens the common slice shapes of raw UI input into []any.
func asSlice(raw any) ([]any, bool) {
	switch x := raw.(type) {
	case []any:
		return x, true
	case []string:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out, true
	case []int:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out, true
	case []float64:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out, true
	case []dataset.Value:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out, true
	default:
		return nil, false
	}
}
