// Package provider implements the Alpha Vantage connector: one fetch per
// (symbol, document kind) and a pure parse from raw payload to loose rows.
//
// Endpoint: GET https://www.alphavantage.co/query with function, symbol
// and apikey query parameters.
//
// Document kinds:
//   - BALANCE_SHEET: annual balance sheet reports
//   - TIME_SERIES_DAILY: daily OHLCV bars
//   - INCOME_STATEMENT: annual income statements
//
// Fetch can fail wholesale (transport, non-2xx, provider error indicator);
// parse never does I/O and only shrinks the result set on malformed
// entries.
package provider
