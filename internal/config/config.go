package config

import "time"

// Config is the root configuration shared by the server and bulk binaries.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Database DBConfig       `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Bulk     BulkConfig     `yaml:"bulk"`
}

// ProviderConfig holds Alpha Vantage API settings.
type ProviderConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

// DBConfig holds the PostgreSQL connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// ServerConfig holds the HTTP ingestion API settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// BulkConfig holds bulk driver settings. RatePerMinute caps the aggregate
// provider call rate across a whole bulk run.
type BulkConfig struct {
	ServiceURL    string `yaml:"service_url"`
	RatePerMinute int    `yaml:"rate_per_minute"`
	SymbolsPath   string `yaml:"symbols_path"`
}
