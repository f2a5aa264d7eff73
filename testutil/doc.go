// Package testutil provides testing utilities for tablefilter.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating deterministic random datasets and
// for rendering datasets as CSV uploads.
//
// # Random Dataset Generation
//
//	rng := testutil.NewRNG(seed)
//	ds := rng.Dataset(1000,
//	    testutil.TextColumn("Status", "Active", "Inactive", "Pending"),
//	    testutil.IntColumn("Amount", 0, 10_000),
//	    testutil.DateColumn("Created", 2024),
//	)
//
// # CSV Fixtures
//
//	content := testutil.CSV(
//	    []string{"Name", "Age"},
//	    []string{"Alice", "30"},
//	    []string{"Bob", ""},
//	)
package testutil
