package filter

import "strings"

// ComparePolicy controls how text values are normalized and compared.
//
// The default is the conservative one: exact, case-sensitive, untrimmed
// comparison. Callers with looser matching requirements opt in explicitly.
type ComparePolicy struct {
	// CaseInsensitive folds case for all text operators.
	CaseInsensitive bool
	// TrimSpace strips leading/trailing whitespace from both the cell and
	// the condition value before text comparison.
	TrimSpace bool
}

// DefaultComparePolicy returns the exact-match policy.
func DefaultComparePolicy() ComparePolicy {
	return ComparePolicy{}
}

// fold normalizes a text value under the policy.
func (p ComparePolicy) fold(s string) string {
	if p.TrimSpace {
		s = strings.TrimSpace(s)
	}
	if p.CaseInsensitive {
		s = strings.ToLower(s)
	}
	return s
}
