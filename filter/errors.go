package filter

import "fmt"

// ErrInvalidCondition indicates a filter condition that was rejected by
// validation: unknown column, operator/type mismatch, unparsable value or
// malformed range. A rejected condition is never partially accepted.
type ErrInvalidCondition struct {
	Column   string
	Operator Operator
	Reason   string
}

func (e *ErrInvalidCondition) Error() string {
	return fmt.Sprintf("invalid condition on %q (%s): %s", e.Column, e.Operator, e.Reason)
}

// ErrCapacityExceeded indicates an attempt to add a condition to a filter
// set that is already at its cap. The set is left unchanged.
type ErrCapacityExceeded struct {
	Cap int
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("filter set at capacity: at most %d conditions", e.Cap)
}

// Warning is a non-fatal evaluation diagnostic, e.g. a condition referencing
// a column that no longer exists after a dataset swap. Warnings are surfaced
// on the Result; they never fail the combinator.
type Warning struct {
	Column  string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Column, w.Message)
}
