package provider

import (
	"sort"

	"github.com/mfranklin/equity-data/internal/record"
)

// ParseBalanceSheet normalizes a raw balance sheet payload into loose rows.
// Reports without a fiscal date cannot be keyed and are skipped.
func ParseBalanceSheet(p *FundamentalsPayload) []record.Row {
	return parseFundamentals(p, map[string]string{
		"totalAssets":            "total_assets",
		"totalLiabilities":       "total_liabilities",
		"totalShareholderEquity": "total_shareholder_equity",
	})
}

// ParseIncomeStatement normalizes a raw income statement payload into
// loose rows.
func ParseIncomeStatement(p *FundamentalsPayload) []record.Row {
	return parseFundamentals(p, map[string]string{
		"totalRevenue":    "total_revenue",
		"grossProfit":     "gross_profit",
		"operatingIncome": "operating_income",
		"ebit":            "ebit",
		"ebitda":          "ebitda",
		"netIncome":       "net_income",
	})
}

// parseFundamentals maps annual reports into rows using the given
// provider-field to canonical-field numeric mapping. A value of "None" or
// an absent key leaves the field out of the row entirely.
func parseFundamentals(p *FundamentalsPayload, numerics map[string]string) []record.Row {
	symbol := record.NormalizeSymbol(p.Symbol)

	rows := make([]record.Row, 0, len(p.AnnualReports))
	for _, rep := range p.AnnualReports {
		if rep["fiscalDateEnding"] == "" {
			continue
		}

		row := record.Row{
			"symbol":             symbol,
			"fiscal_date_ending": rep["fiscalDateEnding"],
			"reported_currency":  currencyOrDefault(rep["reportedCurrency"]),
		}
		for from, to := range numerics {
			putNumeric(row, to, rep[from])
		}
		rows = append(rows, row)
	}
	return rows
}

// ParseDailyPrices normalizes a raw daily series into loose rows, newest
// trading day first. Entries with an empty date key are skipped.
func ParseDailyPrices(p *DailyPricesPayload) []record.Row {
	symbol := record.NormalizeSymbol(p.MetaData.Symbol)

	dates := make([]string, 0, len(p.Series))
	for day := range p.Series {
		if day == "" {
			continue
		}
		dates = append(dates, day)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	rows := make([]record.Row, 0, len(dates))
	for _, day := range dates {
		quote := p.Series[day]
		row := record.Row{
			"symbol":     symbol,
			"trade_date": day,
		}
		putNumeric(row, "open", quote.Open)
		putNumeric(row, "high", quote.High)
		putNumeric(row, "low", quote.Low)
		putNumeric(row, "close", quote.Close)
		putNumeric(row, "volume", quote.Volume)
		rows = append(rows, row)
	}
	return rows
}

func currencyOrDefault(c string) string {
	if c == "" || c == "None" {
		return "USD"
	}
	return c
}

// putNumeric stores a raw numeric value, treating the provider's "None"
// literal and the empty string as no value at all.
func putNumeric(row record.Row, key, value string) {
	if value == "" || value == "None" {
		return
	}
	row[key] = value
}
