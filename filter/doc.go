// Package filter implements the typed filter evaluation engine: condition
// validation, per-row match masks and AND/OR combination.
//
// # Operators
//
// Each column type has a fixed legal operator set:
//
//   - text: eq, in, contains, starts_with, ends_with
//   - numeric: eq, in, gt, lt, between
//   - date: eq, in, before, after, between_dates
//
// A condition outside its column's set is rejected by Validate, never
// silently coerced.
//
// # Masks
//
// A condition evaluates to a RowMask, a Roaring Bitmap with one bit per row.
// Null cells never match. Apply combines the masks of all active conditions
// under the set's mode and selects the matching rows from the original
// dataset, preserving row order.
//
// Example:
//
//	set := filter.NewSet()
//	cond, err := filter.Validate(ds, "Status", filter.OpEquals, "Active", policy)
//	if err != nil {
//	    // rejected: *filter.ErrInvalidCondition with the violated rule
//	}
//	_ = set.Add(cond)
//	res := filter.Apply(ds, set, policy)
//	fmt.Println(res.MatchCount, "/", res.TotalCount)
package filter
