package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/mfranklin/equity-data/internal/provider"
	"github.com/mfranklin/equity-data/internal/record"
)

type stubFetcher struct {
	fundamentals *provider.FundamentalsPayload
	daily        *provider.DailyPricesPayload
	err          error

	gotSymbol     string
	gotOutputSize string
}

func (f *stubFetcher) FetchBalanceSheet(ctx context.Context, symbol string) (*provider.FundamentalsPayload, error) {
	f.gotSymbol = symbol
	return f.fundamentals, f.err
}

func (f *stubFetcher) FetchDailyPrices(ctx context.Context, symbol, outputSize string) (*provider.DailyPricesPayload, error) {
	f.gotSymbol = symbol
	f.gotOutputSize = outputSize
	return f.daily, f.err
}

func (f *stubFetcher) FetchIncomeStatement(ctx context.Context, symbol string) (*provider.FundamentalsPayload, error) {
	f.gotSymbol = symbol
	return f.fundamentals, f.err
}

type stubStore struct {
	err error

	balanceSheets    [][]record.BalanceSheet
	dailyPrices      [][]record.DailyPrice
	incomeStatements [][]record.IncomeStatement
}

func (s *stubStore) UpsertBalanceSheets(ctx context.Context, recs []record.BalanceSheet) (int, error) {
	s.balanceSheets = append(s.balanceSheets, recs)
	return len(recs), s.err
}

func (s *stubStore) UpsertDailyPrices(ctx context.Context, recs []record.DailyPrice) (int, error) {
	s.dailyPrices = append(s.dailyPrices, recs)
	return len(recs), s.err
}

func (s *stubStore) UpsertIncomeStatements(ctx context.Context, recs []record.IncomeStatement) (int, error) {
	s.incomeStatements = append(s.incomeStatements, recs)
	return len(recs), s.err
}

func TestIngestBalanceSheets(t *testing.T) {
	t.Run("count equals surviving records", func(t *testing.T) {
		// Two reports, one missing its fiscal date: only one survives.
		fetcher := &stubFetcher{
			fundamentals: &provider.FundamentalsPayload{
				Symbol: "IBM",
				AnnualReports: []map[string]string{
					{"fiscalDateEnding": "2023-12-31", "totalAssets": "135241000000"},
					{"totalAssets": "127243000000"},
				},
			},
		}
		store := &stubStore{}
		o := New(fetcher, store, nil)

		count, err := o.IngestBalanceSheets(context.Background(), "ibm")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 1 {
			t.Errorf("count = %d, want 1", count)
		}
		if fetcher.gotSymbol != "IBM" {
			t.Errorf("fetched symbol = %q, want normalized IBM", fetcher.gotSymbol)
		}
		if len(store.balanceSheets) != 1 || len(store.balanceSheets[0]) != 1 {
			t.Fatalf("store received %v, want one batch of one record", store.balanceSheets)
		}
		if got := store.balanceSheets[0][0].Key(); got != "IBM/2023-12-31" {
			t.Errorf("stored key = %q, want IBM/2023-12-31", got)
		}
	})

	t.Run("fetch error aborts before upsert", func(t *testing.T) {
		fetchErr := errors.New("provider down")
		fetcher := &stubFetcher{err: fetchErr}
		store := &stubStore{}
		o := New(fetcher, store, nil)

		_, err := o.IngestBalanceSheets(context.Background(), "IBM")
		if !errors.Is(err, fetchErr) {
			t.Errorf("error = %v, want %v", err, fetchErr)
		}
		if len(store.balanceSheets) != 0 {
			t.Error("store must not be touched when fetch fails")
		}
	})

	t.Run("upsert error propagates", func(t *testing.T) {
		storeErr := errors.New("constraint violation")
		fetcher := &stubFetcher{
			fundamentals: &provider.FundamentalsPayload{
				Symbol: "IBM",
				AnnualReports: []map[string]string{
					{"fiscalDateEnding": "2023-12-31"},
				},
			},
		}
		o := New(fetcher, &stubStore{err: storeErr}, nil)

		_, err := o.IngestBalanceSheets(context.Background(), "IBM")
		if !errors.Is(err, storeErr) {
			t.Errorf("error = %v, want %v", err, storeErr)
		}
	})
}

func TestIngestDailyPrices(t *testing.T) {
	t.Run("garbage volume drops only that day", func(t *testing.T) {
		daily := &provider.DailyPricesPayload{}
		daily.MetaData.Symbol = "AAPL"
		daily.Series = map[string]provider.DailyQuote{
			"2024-03-15": {Open: "171.17", High: "172.62", Low: "170.29", Close: "172.62", Volume: "121664700"},
			"2024-03-14": {Open: "172.77", High: "173.18", Low: "170.84", Close: "173.00", Volume: "abc"},
			"2024-03-13": {Open: "172.94", High: "174.31", Low: "172.05", Close: "171.13", Volume: "52488700"},
		}

		fetcher := &stubFetcher{daily: daily}
		store := &stubStore{}
		o := New(fetcher, store, nil)

		count, err := o.IngestDailyPrices(context.Background(), "AAPL", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 2 {
			t.Errorf("count = %d, want 2", count)
		}
		stored := store.dailyPrices[0]
		for _, p := range stored {
			if p.TradeDate.Format(record.DateFormat) == "2024-03-14" {
				t.Error("the malformed day must not be stored")
			}
		}
	})

	t.Run("output size forwarded", func(t *testing.T) {
		fetcher := &stubFetcher{daily: &provider.DailyPricesPayload{}}
		o := New(fetcher, &stubStore{}, nil)

		if _, err := o.IngestDailyPrices(context.Background(), "AAPL", "full"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fetcher.gotOutputSize != "full" {
			t.Errorf("outputSize = %q, want full", fetcher.gotOutputSize)
		}
	})

	t.Run("empty payload yields zero without error", func(t *testing.T) {
		fetcher := &stubFetcher{daily: &provider.DailyPricesPayload{}}
		store := &stubStore{}
		o := New(fetcher, store, nil)

		count, err := o.IngestDailyPrices(context.Background(), "AAPL", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 0 {
			t.Errorf("count = %d, want 0", count)
		}
	})
}

func TestIngestIncomeStatements(t *testing.T) {
	fetcher := &stubFetcher{
		fundamentals: &provider.FundamentalsPayload{
			Symbol: "IBM",
			AnnualReports: []map[string]string{
				{"fiscalDateEnding": "2023-12-31", "totalRevenue": "61860000000", "ebitda": "None"},
				{"fiscalDateEnding": "2022-12-31", "totalRevenue": "60530000000"},
			},
		},
	}
	store := &stubStore{}
	o := New(fetcher, store, nil)

	count, err := o.IngestIncomeStatements(context.Background(), " ibm ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	stored := store.incomeStatements[0]
	if stored[0].EBITDA != nil {
		t.Errorf("EBITDA = %v, want nil for provider None", *stored[0].EBITDA)
	}
	if stored[0].TotalRevenue == nil || *stored[0].TotalRevenue != 61860000000 {
		t.Errorf("TotalRevenue = %v, want 61860000000", stored[0].TotalRevenue)
	}
}
