package filter

import (
	"strings"

	"github.com/hupe1980/tablefilter/dataset"
)

// Evaluate produces the per-row match mask for a single condition.
//
// Null cells never match any comparison. The function is pure: it never
// mutates the dataset, and evaluating the same condition twice yields
// identical masks.
func Evaluate(ds *dataset.Dataset, cond Condition, policy ComparePolicy) *RowMask {
	mask := NewRowMask()
	for i, row := range ds.All() {
		cell, ok := row[cond.Column]
		if !ok || cell.IsNull() {
			continue
		}
		if matches(cell, cond, policy) {
			mask.Add(i)
		}
	}
	return mask
}

// matches evaluates one cell against the condition.
func matches(cell dataset.Value, cond Condition, policy ComparePolicy) bool {
	switch cond.Operator {
	case OpEquals:
		return equal(cell, cond.Value, policy)
	case OpIn:
		for _, v := range cond.Values {
			if equal(cell, v, policy) {
				return true
			}
		}
		return false
	case OpContains:
		cs, vs, ok := textPair(cell, cond.Value, policy)
		return ok && strings.Contains(cs, vs)
	case OpStartsWith:
		cs, vs, ok := textPair(cell, cond.Value, policy)
		return ok && strings.HasPrefix(cs, vs)
	case OpEndsWith:
		cs, vs, ok := textPair(cell, cond.Value, policy)
		return ok && strings.HasSuffix(cs, vs)
	case OpGreaterThan, OpAfter:
		return cell.Greater(cond.Value)
	case OpLessThan, OpBefore:
		return cell.Less(cond.Value)
	case OpBetween, OpBetweenDates:
		// Inclusive on both ends.
		return !cell.Less(cond.Min) && !cell.Greater(cond.Max) && orderable(cell, cond.Min)
	default:
		return false
	}
}

// equal applies the compare policy for text, exact semantics otherwise.
func equal(cell, want dataset.Value, policy ComparePolicy) bool {
	cs, cok := cell.AsText()
	ws, wok := want.AsText()
	if cok && wok {
		return policy.fold(cs) == policy.fold(ws)
	}
	return cell.Equal(want)
}

// textPair extracts both sides as policy-folded text. Substring operators
// only apply to text cells; anything else fails the match.
func textPair(cell, want dataset.Value, policy ComparePolicy) (string, string, bool) {
	cs, ok := cell.AsText()
	if !ok {
		return "", "", false
	}
	ws, ok := want.AsText()
	if !ok {
		return "", "", false
	}
	return policy.fold(cs), policy.fold(ws), true
}

// orderable reports whether the cell can be ordered against the bound at
// all: a text cell inside a numeric range must not satisfy the range by
// default of both Less and Greater returning false.
func orderable(cell, bound dataset.Value) bool {
	if cell.IsNumber() && bound.IsNumber() {
		return true
	}
	return cell.Kind == dataset.KindDate && bound.Kind == dataset.KindDate
}
