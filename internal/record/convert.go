package record

import (
	"fmt"
	"strconv"
	"time"
)

// Row is the loosely-typed record shape produced by the provider's parse
// stage. Keys are canonical field names; a numeric field the provider
// reported no value for is absent from the map.
type Row map[string]string

// BalanceSheetFromRow converts a loose row into a canonical BalanceSheet.
// It returns an error when a required field is missing or a numeric value
// does not convert; the caller drops that single row.
func BalanceSheetFromRow(r Row) (BalanceSheet, error) {
	symbol, err := reqSymbol(r)
	if err != nil {
		return BalanceSheet{}, err
	}
	date, err := reqDate(r, "fiscal_date_ending")
	if err != nil {
		return BalanceSheet{}, err
	}

	b := BalanceSheet{
		Symbol:           symbol,
		FiscalDateEnding: date,
		ReportedCurrency: currency(r),
	}
	if b.TotalAssets, err = optFloat(r, "total_assets"); err != nil {
		return BalanceSheet{}, err
	}
	if b.TotalLiabilities, err = optFloat(r, "total_liabilities"); err != nil {
		return BalanceSheet{}, err
	}
	if b.TotalShareholderEquity, err = optFloat(r, "total_shareholder_equity"); err != nil {
		return BalanceSheet{}, err
	}
	return b, nil
}

// DailyPriceFromRow converts a loose row into a canonical DailyPrice.
// Every numeric field is required.
func DailyPriceFromRow(r Row) (DailyPrice, error) {
	symbol, err := reqSymbol(r)
	if err != nil {
		return DailyPrice{}, err
	}
	date, err := reqDate(r, "trade_date")
	if err != nil {
		return DailyPrice{}, err
	}

	p := DailyPrice{Symbol: symbol, TradeDate: date}
	if p.Open, err = reqFloat(r, "open"); err != nil {
		return DailyPrice{}, err
	}
	if p.High, err = reqFloat(r, "high"); err != nil {
		return DailyPrice{}, err
	}
	if p.Low, err = reqFloat(r, "low"); err != nil {
		return DailyPrice{}, err
	}
	if p.Close, err = reqFloat(r, "close"); err != nil {
		return DailyPrice{}, err
	}
	if p.Volume, err = reqInt(r, "volume"); err != nil {
		return DailyPrice{}, err
	}
	return p, nil
}

// IncomeStatementFromRow converts a loose row into a canonical
// IncomeStatement.
func IncomeStatementFromRow(r Row) (IncomeStatement, error) {
	symbol, err := reqSymbol(r)
	if err != nil {
		return IncomeStatement{}, err
	}
	date, err := reqDate(r, "fiscal_date_ending")
	if err != nil {
		return IncomeStatement{}, err
	}

	i := IncomeStatement{
		Symbol:           symbol,
		FiscalDateEnding: date,
		ReportedCurrency: currency(r),
	}
	if i.TotalRevenue, err = optFloat(r, "total_revenue"); err != nil {
		return IncomeStatement{}, err
	}
	if i.GrossProfit, err = optFloat(r, "gross_profit"); err != nil {
		return IncomeStatement{}, err
	}
	if i.OperatingIncome, err = optFloat(r, "operating_income"); err != nil {
		return IncomeStatement{}, err
	}
	if i.EBIT, err = optFloat(r, "ebit"); err != nil {
		return IncomeStatement{}, err
	}
	if i.EBITDA, err = optFloat(r, "ebitda"); err != nil {
		return IncomeStatement{}, err
	}
	if i.NetIncome, err = optFloat(r, "net_income"); err != nil {
		return IncomeStatement{}, err
	}
	return i, nil
}

func reqSymbol(r Row) (string, error) {
	symbol := NormalizeSymbol(r["symbol"])
	if symbol == "" {
		return "", fmt.Errorf("missing symbol")
	}
	return symbol, nil
}

func reqDate(r Row, key string) (time.Time, error) {
	v, ok := r[key]
	if !ok || v == "" {
		return time.Time{}, fmt.Errorf("missing %s", key)
	}
	d, err := time.Parse(DateFormat, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s %q: %w", key, v, err)
	}
	return d, nil
}

func currency(r Row) string {
	if c := r["reported_currency"]; c != "" {
		return c
	}
	return "USD"
}

// optFloat reads a nullable numeric field. An absent key means the
// provider reported no value and yields nil, not zero.
func optFloat(r Row, key string) (*float64, error) {
	v, ok := r[key]
	if !ok || v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("parse %s %q: %w", key, v, err)
	}
	return &f, nil
}

func reqFloat(r Row, key string) (float64, error) {
	v, ok := r[key]
	if !ok || v == "" {
		return 0, fmt.Errorf("missing %s", key)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", key, v, err)
	}
	return f, nil
}

func reqInt(r Row, key string) (int64, error) {
	v, ok := r[key]
	if !ok || v == "" {
		return 0, fmt.Errorf("missing %s", key)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", key, v, err)
	}
	return n, nil
}
