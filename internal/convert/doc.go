// Package convert implements the two halves of the record transcoder and
// the pre-flight row counter.
//
// Key capabilities:
//   - CSV to JSON document conversion with header translation, blank-row
//     elimination, and default-field injection
//   - JSON document to CSV conversion with deterministic column ordering
//   - Non-blank data row counting sharing the converter's blank predicate
//
// Each conversion is a single synchronous pass: the input is read fully,
// the transformed output is materialized in memory, and the output file
// is written in one operation, so a failure never leaves a partial file.
// The package performs no logging; errors carry a Kind sentinel
// (ErrRead, ErrParse, ErrWrite) and propagate unmodified.
package convert
