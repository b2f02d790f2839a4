// Package store persists canonical records into PostgreSQL with
// insert-or-update semantics keyed by each record's natural key.
//
// Every upsert call runs in its own transaction: the whole batch commits
// or rolls back as one unit, and calling an upsert twice with the same
// records leaves the store in the same state as calling it once.
// Concurrent writes to the same natural key are not serialized beyond
// the row-level atomicity of ON CONFLICT; the later write wins.
package store
