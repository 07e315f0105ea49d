package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config represents the application configuration. Behavioral constants of
// the sync layer (retry budget, backoff, pacing) are fixed in their packages
// and deliberately not configurable here.
type Config struct {
	API     APIConfig     `env:", prefix=API_"`
	Market  MarketConfig  `env:", prefix=MARKET_"`
	Logging LoggingConfig `env:", prefix=LOG_"`
}

// APIConfig holds upstream pricing service settings.
type APIConfig struct {
	BaseURL string `env:"BASE_URL, default=https://api.coingecko.com/api/v3"`
	Key     string `env:"KEY"`
}

// MarketConfig holds background refresh cadences for the sync service.
type MarketConfig struct {
	CatalogRefresh time.Duration `env:"CATALOG_REFRESH, default=60s"`
	SpotRefresh    time.Duration `env:"SPOT_REFRESH, default=45s"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LEVEL, default=info"`
	Format string `env:"FORMAT, default=text"`
	Output string `env:"OUTPUT, default=stderr"`
}

// Load loads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("invalid API base URL: %s", c.API.BaseURL)
	}
	if c.Market.CatalogRefresh <= 0 {
		return fmt.Errorf("catalog refresh interval must be positive")
	}
	if c.Market.SpotRefresh <= 0 {
		return fmt.Errorf("spot refresh interval must be positive")
	}
	return nil
}
