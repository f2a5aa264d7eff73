package tablefilter

import (
	"errors"

	"github.com/hupe1980/tablefilter/filter"
)

var (
	// ErrNoDataset is returned when a filter or export operation runs
	// before any dataset has been loaded.
	ErrNoDataset = errors.New("no dataset loaded")
)

// IsInvalidCondition reports whether err is a condition rejected by
// validation and returns the typed rejection when it is.
func IsInvalidCondition(err error) (*filter.ErrInvalidCondition, bool) {
	var ic *filter.ErrInvalidCondition
	if errors.As(err, &ic) {
		return ic, true
	}
	return nil, false
}

// IsCapacityExceeded reports whether err is a filter-set capacity
// rejection.
func IsCapacityExceeded(err error) bool {
	var ce *filter.ErrCapacityExceeded
	return errors.As(err, &ce)
}
