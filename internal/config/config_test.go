package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const validConfig = `
provider:
  api_key: test-key
database:
  host: localhost
  name: equitydata
  user: ingest
  password: secret
`

func TestLoad(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, validConfig))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Provider.APIKey != "test-key" {
			t.Errorf("APIKey = %q, want test-key", cfg.Provider.APIKey)
		}
		if cfg.Database.Host != "localhost" {
			t.Errorf("Host = %q, want localhost", cfg.Database.Host)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load("/nonexistent/config.yaml"); err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := Load(writeConfig(t, "provider: [")); err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("environment expansion", func(t *testing.T) {
		t.Setenv("TEST_AV_KEY", "expanded-key")
		cfg, err := Load(writeConfig(t, `
provider:
  api_key: ${TEST_AV_KEY}
`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Provider.APIKey != "expanded-key" {
			t.Errorf("APIKey = %q, want expanded-key", cfg.Provider.APIKey)
		}
	})
}

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := LoadWithDefaults(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Provider.BaseURL != DefaultProviderURL {
		t.Errorf("BaseURL = %q, want %q", cfg.Provider.BaseURL, DefaultProviderURL)
	}
	if cfg.Provider.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Provider.Timeout)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Port = %d, want 5432", cfg.Database.Port)
	}
	if cfg.Database.SSLMode != "prefer" {
		t.Errorf("SSLMode = %q, want prefer", cfg.Database.SSLMode)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Bulk.RatePerMinute != 20 {
		t.Errorf("RatePerMinute = %d, want 20", cfg.Bulk.RatePerMinute)
	}
	if cfg.Bulk.ServiceURL != DefaultServiceURL {
		t.Errorf("ServiceURL = %q, want %q", cfg.Bulk.ServiceURL, DefaultServiceURL)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Provider.APIKey = "key"
		cfg.Database.Host = "localhost"
		cfg.Database.Name = "db"
		cfg.Database.User = "user"
		cfg.applyDefaults()
		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing api key", func(c *Config) { c.Provider.APIKey = "" }},
		{"missing db host", func(c *Config) { c.Database.Host = "" }},
		{"missing db name", func(c *Config) { c.Database.Name = "" }},
		{"missing db user", func(c *Config) { c.Database.User = "" }},
		{"bad db port", func(c *Config) { c.Database.Port = 70000 }},
		{"min conns above max", func(c *Config) { c.Database.MinConns = 20 }},
		{"bad server port", func(c *Config) { c.Server.Port = -1 }},
		{"negative rate ceiling", func(c *Config) { c.Bulk.RatePerMinute = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
