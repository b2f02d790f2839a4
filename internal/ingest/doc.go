// Package ingest composes the per-symbol pipeline: fetch -> parse ->
// validate -> upsert, one generic engine instantiated for each of the
// three document kinds.
//
// Error policy:
//   - fetch failures abort the call before any persistence side effect
//   - per-record validation failures drop only that record
//   - upsert failures roll back the whole batch and propagate
package ingest
