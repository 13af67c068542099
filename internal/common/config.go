// Package common provides shared utilities for the STB dashboard
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the STB dashboard
type Config struct {
	Environment string           `toml:"environment"`
	Server      ServerConfig     `toml:"server"`
	Storage     StorageConfig    `toml:"storage"`
	Clients     ClientsConfig    `toml:"clients"`
	Statements  StatementsConfig `toml:"statements"`
	Dashboard   DashboardConfig  `toml:"dashboard"`
	Logging     LoggingConfig    `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds the location of the JSON state files that seed the store.
type StorageConfig struct {
	Path     string `toml:"path"`
	Versions int    `toml:"versions"` // backups kept per slice file, 0 disables
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Cash CashConfig `toml:"cash"`
}

// CashConfig holds the cash statement API configuration
type CashConfig struct {
	BaseURL        string `toml:"base_url"`
	StatementsPath string `toml:"statements_path"`
	ItemPath       string `toml:"item_path"` // JSONPath of the statement payload in the response
	RateLimit      int    `toml:"rate_limit"`
	Timeout        string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *CashConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// StatementsConfig controls the default statement date range.
type StatementsConfig struct {
	LookbackDays int    `toml:"lookback_days"`
	DateLayout   string `toml:"date_layout"`
}

// DashboardConfig holds presentation settings.
type DashboardConfig struct {
	Currency       string `toml:"currency"`         // ISO code used for display amounts
	ChartCacheSize int    `toml:"chart_cache_size"` // rendered PNGs kept in memory
	ChartWidth     int    `toml:"chart_width"`
	ChartHeight    int    `toml:"chart_height"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8090,
		},
		Storage: StorageConfig{
			Path:     "data/state",
			Versions: 2,
		},
		Clients: ClientsConfig{
			Cash: CashConfig{
				BaseURL:        "http://localhost:8080",
				StatementsPath: "/api/cash/statements",
				ItemPath:       "$.item",
				RateLimit:      5,
				Timeout:        "30s",
			},
		},
		Statements: StatementsConfig{
			LookbackDays: 30,
			DateLayout:   "2006-01-02",
		},
		Dashboard: DashboardConfig{
			Currency:       "NGN",
			ChartCacheSize: 64,
			ChartWidth:     900,
			ChartHeight:    400,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// A .env file is optional; variables already in the environment win.
	_ = godotenv.Load()

	applyEnvOverrides(config)
	config.Dashboard.Currency = strings.ToUpper(config.Dashboard.Currency)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("STB_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("STB_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("STB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("STB_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("STB_DATA_PATH"); path != "" {
		config.Storage.Path = path
	}

	if v := os.Getenv("STB_CASH_BASE_URL"); v != "" {
		config.Clients.Cash.BaseURL = strings.TrimRight(v, "/")
	}

	if v := os.Getenv("STB_STATEMENT_LOOKBACK_DAYS"); v != "" {
		if d, err := strconv.Atoi(v); err == nil && d >= 0 {
			config.Statements.LookbackDays = d
		}
	}

	if v := os.Getenv("STB_CURRENCY"); v != "" {
		config.Dashboard.Currency = v
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
