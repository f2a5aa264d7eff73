// Package dataset provides the in-memory tabular data model for tablefilter.
//
// A Dataset is an ordered sequence of rows with a fixed column list and a
// fixed per-column semantic type (text, numeric or date). Types are inferred
// once, at load time, by inspecting column values; filtering only ever
// removes rows and never mutates cells or column definitions.
//
// # Cell values
//
// Cells are typed Values:
//
//   - Text: dataset.Text("Active")
//   - Int: dataset.Int(42)
//   - Float: dataset.Float(3.14)
//   - Date: dataset.Date(t)
//   - Null: dataset.Null()
//
// Int and Float both belong to the numeric column type and compare
// numerically; dates compare by UTC calendar day.
//
// # Type inference
//
// Infer classifies each column: date if every non-null value parses as a
// date under the accepted layouts (ISO 8601, MM/DD/YYYY, DD/MM/YYYY),
// else numeric if every non-null value parses as a number, else text.
// An all-null column defaults to text.
package dataset
