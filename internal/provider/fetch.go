package provider

import (
	"context"
	"encoding/json"
	"net/url"
)

// Provider function names, one per document kind.
const (
	FunctionBalanceSheet    = "BALANCE_SHEET"
	FunctionDailyPrices     = "TIME_SERIES_DAILY"
	FunctionIncomeStatement = "INCOME_STATEMENT"
)

// Output sizes accepted by TIME_SERIES_DAILY.
const (
	OutputSizeCompact = "compact"
	OutputSizeFull    = "full"
)

// FundamentalsPayload is the raw shape shared by BALANCE_SHEET and
// INCOME_STATEMENT responses: a symbol plus a list of annual reports whose
// values are all strings.
type FundamentalsPayload struct {
	Symbol        string              `json:"symbol"`
	AnnualReports []map[string]string `json:"annualReports"`
}

// DailyPricesPayload is the raw shape of a TIME_SERIES_DAILY response.
// The provider prefixes every field key with an ordinal ("1. open").
type DailyPricesPayload struct {
	MetaData struct {
		Symbol string `json:"2. Symbol"`
	} `json:"Meta Data"`
	Series map[string]DailyQuote `json:"Time Series (Daily)"`
}

// DailyQuote is one day's raw OHLCV entry.
type DailyQuote struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// envelope holds the provider's top-level indicator fields. An error
// message is fatal; a rate-limit note or information notice is not.
type envelope struct {
	ErrorMessage string `json:"Error Message"`
	Note         string `json:"Note"`
	Information  string `json:"Information"`
}

// FetchBalanceSheet retrieves the raw balance sheet payload for a symbol.
func (c *Client) FetchBalanceSheet(ctx context.Context, symbol string) (*FundamentalsPayload, error) {
	return c.fetchFundamentals(ctx, FunctionBalanceSheet, symbol)
}

// FetchIncomeStatement retrieves the raw income statement payload for a
// symbol.
func (c *Client) FetchIncomeStatement(ctx context.Context, symbol string) (*FundamentalsPayload, error) {
	return c.fetchFundamentals(ctx, FunctionIncomeStatement, symbol)
}

func (c *Client) fetchFundamentals(ctx context.Context, function, symbol string) (*FundamentalsPayload, error) {
	body, err := c.query(ctx, url.Values{
		"function": {function},
		"symbol":   {symbol},
	})
	if err != nil {
		return nil, err
	}
	if err := c.checkEnvelope(body, function, symbol); err != nil {
		return nil, err
	}

	var p FundamentalsPayload
	if err := json.Unmarshal(body, &p); err != nil {
		// Undecodable body degrades to an empty document set so downstream
		// parsing yields zero records instead of failing the symbol.
		c.logger.Error("undecodable provider payload",
			"function", function,
			"symbol", symbol,
			"error", err,
		)
		return &FundamentalsPayload{Symbol: symbol}, nil
	}
	if p.Symbol == "" {
		p.Symbol = symbol
	}
	return &p, nil
}

// FetchDailyPrices retrieves the raw daily price series for a symbol.
// outputSize is "compact" (latest 100 days) or "full"; empty defaults to
// compact.
func (c *Client) FetchDailyPrices(ctx context.Context, symbol, outputSize string) (*DailyPricesPayload, error) {
	if outputSize == "" {
		outputSize = OutputSizeCompact
	}
	body, err := c.query(ctx, url.Values{
		"function":   {FunctionDailyPrices},
		"symbol":     {symbol},
		"outputsize": {outputSize},
	})
	if err != nil {
		return nil, err
	}
	if err := c.checkEnvelope(body, FunctionDailyPrices, symbol); err != nil {
		return nil, err
	}

	var p DailyPricesPayload
	if err := json.Unmarshal(body, &p); err != nil {
		c.logger.Error("undecodable provider payload",
			"function", FunctionDailyPrices,
			"symbol", symbol,
			"error", err,
		)
		return &DailyPricesPayload{}, nil
	}
	if p.MetaData.Symbol == "" {
		p.MetaData.Symbol = symbol
	}
	return &p, nil
}

// checkEnvelope inspects a 2xx body for provider-level indicators. An
// "Error Message" is a hard failure; "Note"/"Information" (rate limiting
// and similar notices) are logged and tolerated. A body that is not JSON
// at all is left for the payload decode to classify.
func (c *Client) checkEnvelope(body []byte, function, symbol string) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}

	if env.ErrorMessage != "" {
		return &ProviderError{
			Function: function,
			Symbol:   symbol,
			Message:  env.ErrorMessage,
		}
	}
	if env.Note != "" {
		c.logger.Warn("provider notice", "function", function, "symbol", symbol, "note", env.Note)
	}
	if env.Information != "" {
		c.logger.Warn("provider notice", "function", function, "symbol", symbol, "note", env.Information)
	}
	return nil
}
