package dataset

import (
	"math"
	"strconv"
	"time"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a null cell.
	KindNull
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindText represents a text value.
	KindText
	// KindDate represents a calendar date value.
	KindDate
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindDate:
		return "date"
	default:
		return "invalid"
	}
}

// Value is a small typed cell value used for dataset rows and filter
// conditions.
//
// The representation is designed to make filtering fast and predictable:
// no reflection and no fmt-based stringification.
type Value struct {
	Kind Kind      `json:"k"`
	I64  int64     `json:"i,omitempty"`
	F64  float64   `json:"f,omitempty"`
	Str  string    `json:"s,omitempty"`
	Time time.Time `json:"t,omitzero"`
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// Text returns a text Value.
func Text(v string) Value { return Value{Kind: KindText, Str: v} }

// Date returns a date Value. The instant is truncated to midnight UTC of
// its calendar day: date values carry day precision only, so equality and
// ordering agree for cells parsed from timestamp-bearing layouts.
func Date(t time.Time) Value {
	y, m, d := t.UTC().Date()
	return Value{Kind: KindDate, Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// IsNumber reports whether the value is an int or a float.
func (v Value) IsNumber() bool { return v.Kind == KindInt || v.Kind == KindFloat }

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat64 returns the numeric value promoted to float64 if the value
// is an int or a float.
func (v Value) AsFloat64() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.I64), true
	case KindFloat:
		return v.F64, true
	default:
		return 0, false
	}
}

// AsText returns the string value if Kind is KindText.
func (v Value) AsText() (string, bool) {
	if v.Kind != KindText {
		return "", false
	}
	return v.Str, true
}

// AsTime returns the time value if Kind is KindDate.
func (v Value) AsTime() (time.Time, bool) {
	if v.Kind != KindDate {
		return time.Time{}, false
	}
	return v.Time, true
}

// Equal compares two values for equality.
//
// Numbers compare numerically with an exact int fast path, dates compare by
// calendar day, text compares exactly as stored. Null never equals anything,
// including another null: a null cell must not match any explicit comparison.
func (v Value) Equal(other Value) bool {
	if v.Kind == KindNull || other.Kind == KindNull {
		return false
	}

	if v.IsNumber() && other.IsNumber() {
		// Prefer exact int compare when possible.
		if v.Kind == KindInt && other.Kind == KindInt {
			return v.I64 == other.I64
		}
		a, _ := v.AsFloat64()
		b, _ := other.AsFloat64()
		return a == b
	}

	if v.Kind != other.Kind {
		return false
	}

	switch v.Kind {
	case KindText:
		return v.Str == other.Str
	case KindDate:
		return SameDay(v.Time, other.Time)
	default:
		return false
	}
}

// Less reports whether v sorts strictly before other.
//
// Numbers compare numerically, dates chronologically. Comparing a null or
// mixing incomparable kinds yields false.
func (v Value) Less(other Value) bool {
	if v.IsNumber() && other.IsNumber() {
		if v.Kind == KindInt && other.Kind == KindInt {
			return v.I64 < other.I64
		}
		a, _ := v.AsFloat64()
		b, _ := other.AsFloat64()
		return a < b
	}
	if v.Kind == KindDate && other.Kind == KindDate {
		return v.Time.Before(other.Time)
	}
	return false
}

// Greater reports whether v sorts strictly after other.
func (v Value) Greater(other Value) bool {
	if v.IsNumber() && other.IsNumber() {
		if v.Kind == KindInt && other.Kind == KindInt {
			return v.I64 > other.I64
		}
		a, _ := v.AsFloat64()
		b, _ := other.AsFloat64()
		return a > b
	}
	if v.Kind == KindDate && other.Kind == KindDate {
		return v.Time.After(other.Time)
	}
	return false
}

// Format returns the display representation of the value, used by exporters.
//
// Dates render as 2006-01-02, floats in shortest round-trip form, null as the
// empty string.
func (v Value) Format() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.I64, 10)
	case KindFloat:
		if v.F64 == math.Trunc(v.F64) && math.Abs(v.F64) < 1e15 {
			return strconv.FormatFloat(v.F64, 'f', 1, 64)
		}
		return strconv.FormatFloat(v.F64, 'g', -1, 64)
	case KindText:
		return v.Str
	case KindDate:
		return v.Time.Format(time.DateOnly)
	default:
		return ""
	}
}

// SameDay reports whether two instants fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
