package testutil

import (
	"bytes"
	"encoding/csv"
	"math/rand"
	"sync"
	"time"

	"github.com/hupe1980/tablefilter/dataset"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// ColumnSpec generates one column of a random dataset.
type ColumnSpec struct {
	Name string
	Cell func(r *rand.Rand, row int) dataset.Value
}

// TextColumn picks uniformly from the given choices.
func TextColumn(name string, choices ...string) ColumnSpec {
	return ColumnSpec{
		Name: name,
		Cell: func(r *rand.Rand, _ int) dataset.Value {
			return dataset.Text(choices[r.Intn(len(choices))])
		},
	}
}

// IntColumn generates integers in [lo, hi].
func IntColumn(name string, lo, hi int64) ColumnSpec {
	return ColumnSpec{
		Name: name,
		Cell: func(r *rand.Rand, _ int) dataset.Value {
			return dataset.Int(lo + r.Int63n(hi-lo+1))
		},
	}
}

// FloatColumn generates floats in [lo, hi).
func FloatColumn(name string, lo, hi float64) ColumnSpec {
	return ColumnSpec{
		Name: name,
		Cell: func(r *rand.Rand, _ int) dataset.Value {
			return dataset.Float(lo + r.Float64()*(hi-lo))
		},
	}
}

// DateColumn generates UTC dates spread over the given year.
func DateColumn(name string, year int) ColumnSpec {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return ColumnSpec{
		Name: name,
		Cell: func(r *rand.Rand, _ int) dataset.Value {
			return dataset.Date(start.AddDate(0, 0, r.Intn(365)))
		},
	}
}

// Sparse wraps a spec so that each cell is null with probability missingRate.
func Sparse(spec ColumnSpec, missingRate float64) ColumnSpec {
	inner := spec.Cell
	spec.Cell = func(r *rand.Rand, row int) dataset.Value {
		if r.Float64() < missingRate {
			return dataset.Null()
		}
		return inner(r, row)
	}
	return spec
}

// Dataset builds a random dataset with numRows rows from the column specs.
// The result is deterministic for a given seed and spec order.
func (r *RNG) Dataset(numRows int, specs ...ColumnSpec) *dataset.Dataset {
	r.mu.Lock()
	defer r.mu.Unlock()

	columns := make([]string, len(specs))
	for i, spec := range specs {
		columns[i] = spec.Name
	}

	rows := make([]dataset.Row, numRows)
	for i := range numRows {
		row := make(dataset.Row, len(specs))
		for _, spec := range specs {
			row[spec.Name] = spec.Cell(r.rand, i)
		}
		rows[i] = row
	}

	ds, err := dataset.New(columns, rows)
	if err != nil {
		panic(err) // Specs with duplicate names are a test bug.
	}
	return ds
}

// CSV renders a header plus records as CSV upload bytes.
func CSV(header []string, records ...[]string) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(header)
	for _, rec := range records {
		_ = w.Write(rec)
	}
	w.Flush()
	return buf.Bytes()
}

// MustDataset builds a typed dataset from literal rows, panicking on error.
func MustDataset(columns []string, types map[string]dataset.ColumnType, rows []dataset.Row) *dataset.Dataset {
	ds, err := dataset.NewWithTypes(columns, types, rows)
	if err != nil {
		panic(err)
	}
	return ds
}
