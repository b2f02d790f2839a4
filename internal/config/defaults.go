package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultProviderURL     = "https://www.alphavantage.co"
	DefaultProviderTimeout = 30 * time.Second
	DefaultDBPort          = 5432
	DefaultDBSSLMode       = "prefer"
	DefaultMaxConns        = 10
	DefaultMinConns        = 2
	DefaultServerPort      = 8000
	DefaultServiceURL      = "http://localhost:8000"
	DefaultRatePerMinute   = 20
	DefaultSymbolsPath     = "symbols.csv"
)

func (c *Config) applyDefaults() {
	// Provider defaults
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = DefaultProviderURL
	}
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = DefaultProviderTimeout
	}

	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Server defaults
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}

	// Bulk defaults
	if c.Bulk.ServiceURL == "" {
		c.Bulk.ServiceURL = DefaultServiceURL
	}
	if c.Bulk.RatePerMinute == 0 {
		c.Bulk.RatePerMinute = DefaultRatePerMinute
	}
	if c.Bulk.SymbolsPath == "" {
		c.Bulk.SymbolsPath = DefaultSymbolsPath
	}
}
