// Package diagnostic provides structured findings for vocabulary
// validation.
//
// Key capabilities:
//   - Duplicate table key reports
//   - Ingest/egress consistency findings
//   - Combining all findings into a single configuration error
package diagnostic
