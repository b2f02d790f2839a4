// Package server exposes the ingestion pipeline over HTTP.
//
// Routes:
//
//	POST /api/ingest/:symbol         balance sheets
//	POST /api/ingest/daily/:symbol   daily prices (?outputsize=full)
//	POST /api/ingest/income/:symbol  income statements
//	GET  /health                     database health
//
// Ingestion responses are {"inserted": n}; any propagated pipeline error
// becomes a 500 carrying the error text, never a success response.
package server
