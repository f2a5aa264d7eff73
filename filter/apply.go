package filter

import "github.com/hupe1980/tablefilter/dataset"

// Result is the outcome of applying a filter set to a dataset.
type Result struct {
	// Dataset is the filtered view, rows in original order.
	Dataset *dataset.Dataset
	// MatchCount is the number of matching rows. Zero is a real state
	// ("no results"), distinct from an unfiltered empty dataset.
	MatchCount int
	// TotalCount is the row count of the unfiltered dataset.
	TotalCount int
	// Warnings carries non-fatal diagnostics, e.g. stale column references
	// excluded from evaluation.
	Warnings []Warning
}

// Apply evaluates every active condition against the full original dataset
// and combines the per-condition masks under the set's mode.
//
// Inactive conditions are skipped as if absent. A condition referencing a
// column missing from the dataset (stale after a dataset swap) is excluded
// with a Warning, never a hard failure. With no effective conditions the
// result is the full dataset. Apply is idempotent: the same set against the
// same dataset yields identical output.
func Apply(ds *dataset.Dataset, s *Set, policy ComparePolicy) *Result {
	res := &Result{
		TotalCount: ds.NumRows(),
	}

	var combined *RowMask
	for _, cond := range s.Conditions() {
		if !cond.Active {
			continue
		}
		if !ds.HasColumn(cond.Column) {
			res.Warnings = append(res.Warnings, Warning{
				Column:  cond.Column,
				Message: "column not present in current dataset; condition skipped",
			})
			continue
		}

		mask := Evaluate(ds, cond, policy)
		if combined == nil {
			combined = mask
			continue
		}
		if s.Mode() == ModeOr {
			combined.Or(mask)
		} else {
			combined.And(mask)
		}
	}

	if combined == nil {
		// No effective conditions: no filtering.
		combined = FullRowMask(ds.NumRows())
	}

	res.Dataset = ds.Select(combined.Indices())
	res.MatchCount = combined.Count()
	return res
}
