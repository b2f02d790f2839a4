// Package record defines the canonical record schemas for each document
// kind, plus the conversion from the provider's loosely-typed rows.
//
// Conventions:
//   - Natural keys: (symbol, fiscal_date_ending) for fundamentals,
//     (symbol, trade_date) for daily prices
//   - Symbols: always trimmed and upper-cased before keying
//   - Nullable numerics: *float64, nil when the provider reported no value
//     ("None" string or absent key) — never zero
package record
