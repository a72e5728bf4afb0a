package core

import (
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "stockpool")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "stockpool_test")
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PORT", "5433")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("HTTP_ADDR", ":9999")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.DB.Host != "localhost" {
		t.Errorf("DB.Host = %q, want localhost", cfg.DB.Host)
	}
	if cfg.DB.Port != "5433" {
		t.Errorf("DB.Port = %q, want 5433", cfg.DB.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if cfg.HTTPAddr != ":9999" {
		t.Errorf("HTTPAddr = %q, want :9999", cfg.HTTPAddr)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PORT", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("MARKET_API_URL", "")
	t.Setenv("FOREX_API_URL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.DB.Port != "5432" {
		t.Errorf("DB.Port = %q, want default 5432", cfg.DB.Port)
	}
	if cfg.Environment != "production" {
		t.Errorf("Environment = %q, want default production", cfg.Environment)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want default :8080", cfg.HTTPAddr)
	}
	if cfg.MarketAPIURL == "" || cfg.ForexAPIURL == "" {
		t.Error("provider URLs must have defaults")
	}
}

func TestLoadConfigMissingCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PASSWORD", "")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig succeeded, want error for missing DB_PASSWORD")
	}
	if !strings.Contains(err.Error(), "DB_PASSWORD") {
		t.Errorf("error = %v, want mention of DB_PASSWORD", err)
	}
}
