package bulk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/mfranklin/equity-data/internal/config"
)

// endpoint names one document kind's ingestion route.
type endpoint struct {
	kind string
	path string
}

func endpointsFor(symbol string) []endpoint {
	return []endpoint{
		{kind: "balance_sheet", path: "/api/ingest/" + symbol},
		{kind: "daily_price", path: "/api/ingest/daily/" + symbol},
		{kind: "income_statement", path: "/api/ingest/income/" + symbol},
	}
}

// Summary is the outcome of one bulk run.
type Summary struct {
	Symbols  int
	Calls    int
	Failures int
	Inserted int
}

// Runner walks a symbol list against the ingestion service.
type Runner struct {
	serviceURL string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	runID      uuid.UUID
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) RunnerOption {
	return func(r *Runner) {
		r.httpClient = hc
	}
}

// NewRunner creates a Runner. The rate limiter admits one call per
// 60/RatePerMinute seconds with no burst beyond the first call.
func NewRunner(cfg config.BulkConfig, logger *slog.Logger, opts ...RunnerOption) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	r := &Runner{
		serviceURL: cfg.ServiceURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(float64(cfg.RatePerMinute)/60.0), 1),
		logger:     logger,
		runID:      uuid.New(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run ingests all three document kinds for every symbol, in order. Each
// provider-bound call waits on the rate limiter first. Failures are logged
// and skipped; only context cancellation stops the run.
func (r *Runner) Run(ctx context.Context, symbols []string) (Summary, error) {
	summary := Summary{Symbols: len(symbols)}

	r.logger.Info("bulk run started",
		"run_id", r.runID,
		"symbols", len(symbols),
		"service_url", r.serviceURL,
	)

	for _, symbol := range symbols {
		for _, ep := range endpointsFor(symbol) {
			if err := r.limiter.Wait(ctx); err != nil {
				return summary, err
			}

			summary.Calls++
			inserted, err := r.call(ctx, ep.path)
			if err != nil {
				summary.Failures++
				r.logger.Warn("ingestion call failed",
					"run_id", r.runID,
					"symbol", symbol,
					"kind", ep.kind,
					"error", err,
				)
				continue
			}

			summary.Inserted += inserted
			r.logger.Info("ingestion call succeeded",
				"run_id", r.runID,
				"symbol", symbol,
				"kind", ep.kind,
				"inserted", inserted,
			)
		}
	}

	r.logger.Info("bulk run finished",
		"run_id", r.runID,
		"calls", summary.Calls,
		"failures", summary.Failures,
		"inserted", summary.Inserted,
	)
	return summary, nil
}

// call POSTs one ingestion endpoint and returns the inserted count.
func (r *Runner) call(ctx context.Context, path string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.serviceURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var failure struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &failure) == nil && failure.Error != "" {
			return 0, fmt.Errorf("service error %d: %s", resp.StatusCode, failure.Error)
		}
		return 0, fmt.Errorf("service error %d", resp.StatusCode)
	}

	var result struct {
		Inserted int `json:"inserted"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("unmarshal response: %w", err)
	}
	return result.Inserted, nil
}
