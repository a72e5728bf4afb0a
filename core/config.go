package core

import (
	"fmt"
	"os"
)

// DBConfig holds the Postgres connection parameters. It is populated once in
// LoadConfig and handed to InitDB explicitly so tests can inject their own.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Config struct {
	// Environment is "development" or "production". Controls logger verbosity.
	Environment string
	// HTTPAddr is the listen address of the API server.
	HTTPAddr string

	DB DBConfig

	// MarketAPIURL is the base URL of the market-data provider.
	MarketAPIURL string
	MarketAPIKey string
	// ForexAPIURL is the base URL of the exchange-rate provider.
	ForexAPIURL string
}

// LoadConfig reads the process environment into a Config. The database
// credentials are required; everything else has a sane default. This is the
// only place in the codebase that reads environment variables.
func LoadConfig() (Config, error) {
	cfg := Config{
		Environment:  getenv("ENVIRONMENT", "production"),
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		MarketAPIURL: getenv("MARKET_API_URL", "https://yfapi.net"),
		MarketAPIKey: os.Getenv("MARKET_API_KEY"),
		ForexAPIURL:  getenv("FOREX_API_URL", "https://api.exchangerate.host"),
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getenv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}

	for _, required := range []struct {
		key, value string
	}{
		{"DB_HOST", cfg.DB.Host},
		{"DB_USER", cfg.DB.User},
		{"DB_PASSWORD", cfg.DB.Password},
		{"DB_NAME", cfg.DB.Name},
	} {
		if required.value == "" {
			return Config{}, fmt.Errorf("missing required environment variable %s", required.key)
		}
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
