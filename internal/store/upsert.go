package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mfranklin/equity-data/internal/record"
)

const upsertBalanceSheetSQL = `
	INSERT INTO balance_sheets (symbol, fiscal_date_ending, reported_currency,
		total_assets, total_liabilities, total_shareholder_equity)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (symbol, fiscal_date_ending) DO UPDATE SET
		reported_currency        = EXCLUDED.reported_currency,
		total_assets             = EXCLUDED.total_assets,
		total_liabilities        = EXCLUDED.total_liabilities,
		total_shareholder_equity = EXCLUDED.total_shareholder_equity
`

const upsertDailyPriceSQL = `
	INSERT INTO daily_prices (symbol, trade_date, open_price, high_price,
		low_price, close_price, volume)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (symbol, trade_date) DO UPDATE SET
		open_price  = EXCLUDED.open_price,
		high_price  = EXCLUDED.high_price,
		low_price   = EXCLUDED.low_price,
		close_price = EXCLUDED.close_price,
		volume      = EXCLUDED.volume
`

const upsertIncomeStatementSQL = `
	INSERT INTO income_statements (symbol, fiscal_date_ending, reported_currency,
		total_revenue, gross_profit, operating_income, ebit, ebitda, net_income)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (symbol, fiscal_date_ending) DO UPDATE SET
		reported_currency = EXCLUDED.reported_currency,
		total_revenue     = EXCLUDED.total_revenue,
		gross_profit      = EXCLUDED.gross_profit,
		operating_income  = EXCLUDED.operating_income,
		ebit              = EXCLUDED.ebit,
		ebitda            = EXCLUDED.ebitda,
		net_income        = EXCLUDED.net_income
`

func balanceSheetArgs(r record.BalanceSheet) []any {
	return []any{
		r.Symbol, r.FiscalDateEnding, r.ReportedCurrency,
		r.TotalAssets, r.TotalLiabilities, r.TotalShareholderEquity,
	}
}

func dailyPriceArgs(r record.DailyPrice) []any {
	return []any{
		r.Symbol, r.TradeDate,
		r.Open, r.High, r.Low, r.Close, r.Volume,
	}
}

func incomeStatementArgs(r record.IncomeStatement) []any {
	return []any{
		r.Symbol, r.FiscalDateEnding, r.ReportedCurrency,
		r.TotalRevenue, r.GrossProfit, r.OperatingIncome,
		r.EBIT, r.EBITDA, r.NetIncome,
	}
}

// UpsertBalanceSheets inserts or updates balance sheet rows keyed by
// (symbol, fiscal_date_ending). The whole batch is one transaction.
func (s *Store) UpsertBalanceSheets(ctx context.Context, recs []record.BalanceSheet) (int, error) {
	batch := &pgx.Batch{}
	for _, r := range recs {
		batch.Queue(upsertBalanceSheetSQL, balanceSheetArgs(r)...)
	}
	return s.upsertBatch(ctx, "balance_sheets", batch)
}

// UpsertDailyPrices inserts or updates daily price rows keyed by
// (symbol, trade_date). The whole batch is one transaction.
func (s *Store) UpsertDailyPrices(ctx context.Context, recs []record.DailyPrice) (int, error) {
	batch := &pgx.Batch{}
	for _, r := range recs {
		batch.Queue(upsertDailyPriceSQL, dailyPriceArgs(r)...)
	}
	return s.upsertBatch(ctx, "daily_prices", batch)
}

// UpsertIncomeStatements inserts or updates income statement rows keyed by
// (symbol, fiscal_date_ending). The whole batch is one transaction.
func (s *Store) UpsertIncomeStatements(ctx context.Context, recs []record.IncomeStatement) (int, error) {
	batch := &pgx.Batch{}
	for _, r := range recs {
		batch.Queue(upsertIncomeStatementSQL, incomeStatementArgs(r)...)
	}
	return s.upsertBatch(ctx, "income_statements", batch)
}

// upsertBatch runs the queued statements in a single transaction and
// returns the number of rows written. An empty batch is a no-op. Any
// failure rolls back the whole unit of work.
func (s *Store) upsertBatch(ctx context.Context, table string, batch *pgx.Batch) (int, error) {
	if batch.Len() == 0 {
		return 0, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	results := tx.SendBatch(ctx, batch)

	affected := 0
	for i := 0; i < batch.Len(); i++ {
		ct, err := results.Exec()
		if err != nil {
			results.Close()
			return 0, fmt.Errorf("upsert %s row %d: %w", table, i, err)
		}
		affected += int(ct.RowsAffected())
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}

	s.logger.Debug("upserted records", "table", table, "count", affected)
	return affected, nil
}
