package filter

import "github.com/hupe1980/tablefilter/dataset"

// Operator represents a comparison operator for a filter condition.
type Operator string

const (
	// OpEquals matches cells equal to a single value.
	OpEquals Operator = "eq"
	// OpIn matches cells equal to one of a set of values (multi-select equals).
	OpIn Operator = "in"
	// OpContains matches text cells containing a substring.
	OpContains Operator = "contains"
	// OpStartsWith matches text cells with a prefix.
	OpStartsWith Operator = "starts_with"
	// OpEndsWith matches text cells with a suffix.
	OpEndsWith Operator = "ends_with"
	// OpGreaterThan matches numeric cells strictly greater than a value.
	OpGreaterThan Operator = "gt"
	// OpLessThan matches numeric cells strictly less than a value.
	OpLessThan Operator = "lt"
	// OpBetween matches numeric cells in an inclusive range.
	OpBetween Operator = "between"
	// OpBefore matches date cells strictly before a date.
	OpBefore Operator = "before"
	// OpAfter matches date cells strictly after a date.
	OpAfter Operator = "after"
	// OpBetweenDates matches date cells in an inclusive range.
	OpBetweenDates Operator = "between_dates"
)

// legalOperators maps each column type to its legal operator set.
// A condition whose operator is outside its column's set is rejected,
// never coerced.
var legalOperators = map[dataset.ColumnType][]Operator{
	dataset.TypeText:    {OpEquals, OpIn, OpContains, OpStartsWith, OpEndsWith},
	dataset.TypeNumeric: {OpEquals, OpIn, OpGreaterThan, OpLessThan, OpBetween},
	dataset.TypeDate:    {OpEquals, OpIn, OpBefore, OpAfter, OpBetweenDates},
}

// LegalOperators returns the operators legal for the given column type.
func LegalOperators(t dataset.ColumnType) []Operator {
	return append([]Operator(nil), legalOperators[t]...)
}

// Legal reports whether op is legal for the given column type.
func Legal(t dataset.ColumnType, op Operator) bool {
	for _, o := range legalOperators[t] {
		if o == op {
			return true
		}
	}
	return false
}

// isRange reports whether op takes an ordered (min, max) pair.
func (op Operator) isRange() bool {
	return op == OpBetween || op == OpBetweenDates
}
