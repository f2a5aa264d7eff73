package filter

// Mode selects how condition masks are combined.
type Mode uint8

const (
	// ModeAnd keeps rows satisfying every active condition.
	ModeAnd Mode = iota
	// ModeOr keeps rows satisfying at least one active condition.
	ModeOr
)

// String returns the string representation of the Mode.
func (m Mode) String() string {
	if m == ModeOr {
		return "OR"
	}
	return "AND"
}

// DefaultMaxConditions caps the number of conditions in a set. The bound
// exists to cap evaluation cost, not correctness.
const DefaultMaxConditions = 10

// Set is the mutable collection of active conditions plus combination mode.
//
// A Set never recomputes anything on its own: every mutation is followed by
// an explicit Apply call by the caller. It is owned by a single session and
// is not safe for concurrent use.
type Set struct {
	conditions []Condition
	mode       Mode
	cap        int
}

// NewSet creates an empty filter set in AND mode with the default cap.
func NewSet() *Set {
	return NewSetWithCap(DefaultMaxConditions)
}

// NewSetWithCap creates an empty filter set with a custom condition cap.
// A cap below one falls back to the default.
func NewSetWithCap(cap int) *Set {
	if cap < 1 {
		cap = DefaultMaxConditions
	}
	return &Set{cap: cap}
}

// Add appends a condition. It rejects with *ErrCapacityExceeded when the set
// is already at its cap, leaving the set unchanged.
func (s *Set) Add(c Condition) error {
	if len(s.conditions) >= s.cap {
		return &ErrCapacityExceeded{Cap: s.cap}
	}
	s.conditions = append(s.conditions, c)
	return nil
}

// Remove drops every condition on the named column. Removing an absent
// column is a no-op.
func (s *Set) Remove(column string) {
	kept := s.conditions[:0]
	for _, c := range s.conditions {
		if c.Column != column {
			kept = append(kept, c)
		}
	}
	s.conditions = kept
}

// SetActive toggles every condition on the named column without removing it.
// Inactive conditions are skipped by Apply as if absent.
func (s *Set) SetActive(column string, active bool) {
	for i := range s.conditions {
		if s.conditions[i].Column == column {
			s.conditions[i].Active = active
		}
	}
}

// Clear empties the set and resets the mode to AND.
func (s *Set) Clear() {
	s.conditions = s.conditions[:0]
	s.mode = ModeAnd
}

// SetMode sets the combination mode.
func (s *Set) SetMode(m Mode) {
	s.mode = m
}

// Mode returns the combination mode.
func (s *Set) Mode() Mode {
	return s.mode
}

// Len returns the number of conditions, active or not.
func (s *Set) Len() int {
	return len(s.conditions)
}

// Conditions returns a copy of the conditions in insertion order. Ordering
// is irrelevant to the combination result but preserved for display.
func (s *Set) Conditions() []Condition {
	return append([]Condition(nil), s.conditions...)
}
