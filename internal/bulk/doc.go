// Package bulk drives ingestion for a whole symbol list against the HTTP
// ingestion service, one call at a time, under a fixed calls-per-minute
// ceiling so the provider's request quota is never exceeded.
//
// A failed call is logged and skipped; the run itself is best effort and
// only stops on context cancellation.
package bulk
