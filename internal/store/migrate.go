package store

import (
	"context"
	"fmt"
)

// Table definitions. Each table carries a surrogate id plus the natural
// uniqueness constraint the upserts key on.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS balance_sheets (
		id                       bigserial PRIMARY KEY,
		symbol                   text        NOT NULL,
		fiscal_date_ending       date        NOT NULL,
		reported_currency        text        NOT NULL,
		total_assets             double precision,
		total_liabilities        double precision,
		total_shareholder_equity double precision,
		created_at               timestamptz NOT NULL DEFAULT now(),
		CONSTRAINT uq_balance_sheets_symbol_date UNIQUE (symbol, fiscal_date_ending)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_balance_sheets_symbol ON balance_sheets (symbol)`,

	`CREATE TABLE IF NOT EXISTS daily_prices (
		id          bigserial PRIMARY KEY,
		symbol      text             NOT NULL,
		trade_date  date             NOT NULL,
		open_price  double precision NOT NULL,
		high_price  double precision NOT NULL,
		low_price   double precision NOT NULL,
		close_price double precision NOT NULL,
		volume      bigint           NOT NULL,
		created_at  timestamptz      NOT NULL DEFAULT now(),
		CONSTRAINT uq_daily_prices_symbol_date UNIQUE (symbol, trade_date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_daily_prices_symbol ON daily_prices (symbol)`,

	`CREATE TABLE IF NOT EXISTS income_statements (
		id                 bigserial PRIMARY KEY,
		symbol             text        NOT NULL,
		fiscal_date_ending date        NOT NULL,
		reported_currency  text        NOT NULL,
		total_revenue      double precision,
		gross_profit       double precision,
		operating_income   double precision,
		ebit               double precision,
		ebitda             double precision,
		net_income         double precision,
		created_at         timestamptz NOT NULL DEFAULT now(),
		CONSTRAINT uq_income_statements_symbol_date UNIQUE (symbol, fiscal_date_ending)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_income_statements_symbol ON income_statements (symbol)`,
}

// Migrate creates the tables and indexes if they do not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	s.logger.Info("database schema ready")
	return nil
}
