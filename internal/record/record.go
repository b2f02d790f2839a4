package record

import (
	"strings"
	"time"
)

// DateFormat is the provider's date layout for fiscal and trading dates.
const DateFormat = "2006-01-02"

// NormalizeSymbol trims surrounding whitespace and upper-cases a ticker
// symbol. Applied before a symbol participates in any key or provider call.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// BalanceSheet is one annual balance sheet report for a symbol.
type BalanceSheet struct {
	Symbol           string
	FiscalDateEnding time.Time
	ReportedCurrency string

	TotalAssets            *float64
	TotalLiabilities       *float64
	TotalShareholderEquity *float64
}

// Key returns the natural key (symbol, fiscal date) as a string.
func (b BalanceSheet) Key() string {
	return b.Symbol + "/" + b.FiscalDateEnding.Format(DateFormat)
}

// DailyPrice is one trading day's OHLCV bar for a symbol. All numeric
// fields are required; a bar with any missing field is never constructed.
type DailyPrice struct {
	Symbol    string
	TradeDate time.Time

	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Key returns the natural key (symbol, trade date) as a string.
func (p DailyPrice) Key() string {
	return p.Symbol + "/" + p.TradeDate.Format(DateFormat)
}

// IncomeStatement is one annual income statement report for a symbol.
type IncomeStatement struct {
	Symbol           string
	FiscalDateEnding time.Time
	ReportedCurrency string

	TotalRevenue    *float64
	GrossProfit     *float64
	OperatingIncome *float64
	EBIT            *float64
	EBITDA          *float64
	NetIncome       *float64
}

// Key returns the natural key (symbol, fiscal date) as a string.
func (i IncomeStatement) Key() string {
	return i.Symbol + "/" + i.FiscalDateEnding.Format(DateFormat)
}
