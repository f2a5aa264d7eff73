// Package tablefilter provides an embeddable filter engine for small
// tabular datasets.
//
// A Session owns one loaded dataset and one filter set. Load a CSV, Excel
// or JSON file, add typed filter conditions, and read back the filtered
// view with an accurate match count. Every edit re-evaluates against the
// original dataset, so results are deterministic and re-filterable.
//
// # Quick Start
//
//	s := tablefilter.New()
//	if _, err := s.LoadBytes("orders.csv", content); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Column types are inferred at load time and gate the legal operators.
//	if err := s.AddCondition("Status", filter.OpEquals, "Active"); err != nil {
//	    // *filter.ErrInvalidCondition carries the violated rule
//	}
//	_ = s.AddCondition("Amount", filter.OpGreaterThan, 1000)
//
//	res, _ := s.Apply()
//	fmt.Printf("%d / %d rows\n", res.MatchCount, res.TotalCount)
//
// # Combination modes
//
// Conditions combine under AND (default) or OR:
//
//	s.SetMode(filter.ModeOr)
//	res, _ = s.Apply()
//
// # Export
//
// The filtered view exports unchanged in row and column order:
//
//	err := s.ExportToStore(ctx, store, "exports/orders-active.csv.gz",
//	    export.WithCompression(export.CompressionGzip))
//
// Repeated exports can be tracked through a Publisher (e.g. the s3
// package's DynamoDB-backed PublishLog), so consumers always resolve the
// latest published version:
//
//	version, err := s.ExportAndPublish(ctx, store, publishLog, "exports/orders-v7.csv")
//
// # Concurrency
//
// A Session is not safe for concurrent use: one session per user, every
// edit handled as one synchronous unit of work. Callers running sessions
// inside a server must serialize access per session.
package tablefilter
