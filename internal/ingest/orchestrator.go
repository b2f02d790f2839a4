package ingest

import (
	"context"
	"log/slog"

	"github.com/mfranklin/equity-data/internal/provider"
	"github.com/mfranklin/equity-data/internal/record"
)

// Fetcher is the provider capability the orchestrator depends on.
type Fetcher interface {
	FetchBalanceSheet(ctx context.Context, symbol string) (*provider.FundamentalsPayload, error)
	FetchDailyPrices(ctx context.Context, symbol, outputSize string) (*provider.DailyPricesPayload, error)
	FetchIncomeStatement(ctx context.Context, symbol string) (*provider.FundamentalsPayload, error)
}

// Upserter is the persistence capability the orchestrator depends on.
type Upserter interface {
	UpsertBalanceSheets(ctx context.Context, recs []record.BalanceSheet) (int, error)
	UpsertDailyPrices(ctx context.Context, recs []record.DailyPrice) (int, error)
	UpsertIncomeStatements(ctx context.Context, recs []record.IncomeStatement) (int, error)
}

// Orchestrator runs the ingestion pipeline for one symbol and document
// kind at a time. It holds no per-symbol state, so one instance serves
// concurrent calls for different symbols.
type Orchestrator struct {
	fetcher Fetcher
	store   Upserter
	logger  *slog.Logger
}

// New creates an Orchestrator.
func New(fetcher Fetcher, store Upserter, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		fetcher: fetcher,
		store:   store,
		logger:  logger,
	}
}

// IngestBalanceSheets ingests annual balance sheets for one symbol and
// returns the number of records upserted.
func (o *Orchestrator) IngestBalanceSheets(ctx context.Context, symbol string) (int, error) {
	return ingestKind(ctx, o, symbol, "balance_sheet",
		o.fetcher.FetchBalanceSheet,
		provider.ParseBalanceSheet,
		record.BalanceSheetFromRow,
		o.store.UpsertBalanceSheets,
	)
}

// IngestDailyPrices ingests the daily price series for one symbol and
// returns the number of records upserted. outputSize is passed through to
// the provider ("compact" when empty).
func (o *Orchestrator) IngestDailyPrices(ctx context.Context, symbol, outputSize string) (int, error) {
	fetch := func(ctx context.Context, symbol string) (*provider.DailyPricesPayload, error) {
		return o.fetcher.FetchDailyPrices(ctx, symbol, outputSize)
	}
	return ingestKind(ctx, o, symbol, "daily_price",
		fetch,
		provider.ParseDailyPrices,
		record.DailyPriceFromRow,
		o.store.UpsertDailyPrices,
	)
}

// IngestIncomeStatements ingests annual income statements for one symbol
// and returns the number of records upserted.
func (o *Orchestrator) IngestIncomeStatements(ctx context.Context, symbol string) (int, error) {
	return ingestKind(ctx, o, symbol, "income_statement",
		o.fetcher.FetchIncomeStatement,
		provider.ParseIncomeStatement,
		record.IncomeStatementFromRow,
		o.store.UpsertIncomeStatements,
	)
}

// ingestKind is the generic pipeline: fetch the raw payload, parse it into
// loose rows, validate into canonical records, upsert the survivors. The
// count returned is the number of validated records, which the store
// applies atomically or not at all.
func ingestKind[P, T any](
	ctx context.Context,
	o *Orchestrator,
	symbol, kind string,
	fetch func(context.Context, string) (P, error),
	parse func(P) []record.Row,
	convert func(record.Row) (T, error),
	upsert func(context.Context, []T) (int, error),
) (int, error) {
	symbol = record.NormalizeSymbol(symbol)

	payload, err := fetch(ctx, symbol)
	if err != nil {
		return 0, err
	}

	rows := parse(payload)
	recs, dropped := Validate(kind, rows, convert, o.logger)

	if _, err := upsert(ctx, recs); err != nil {
		return 0, err
	}

	o.logger.Info("ingested symbol",
		"kind", kind,
		"symbol", symbol,
		"upserted", len(recs),
		"dropped", dropped,
	)
	return len(recs), nil
}
