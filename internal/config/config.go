package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// UniverseEntry is one tracked ticker in the configured universe. List order
// in the yaml file is the registry's iteration order.
type UniverseEntry struct {
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`
}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Quotes struct {
		WindowDays     int `yaml:"window_days"`
		TimeoutSeconds int `yaml:"timeout_seconds"`
		MaxConcurrent  int `yaml:"max_concurrent"`
	} `yaml:"quotes"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Report struct {
		MarketSuffix string `yaml:"market_suffix"`
	} `yaml:"report"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Universe []UniverseEntry `yaml:"universe"`
	Proxy    string          `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	// Legacy name kept for old deployments.
	if v := os.Getenv("STONK_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("MAX_CONCURRENT"); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			cfg.Quotes.MaxConcurrent = n
		}
	}

	// Defaults
	if cfg.Quotes.WindowDays == 0 {
		cfg.Quotes.WindowDays = 5
	}
	if cfg.Quotes.TimeoutSeconds == 0 {
		cfg.Quotes.TimeoutSeconds = 10
	}
	if cfg.Quotes.MaxConcurrent == 0 {
		cfg.Quotes.MaxConcurrent = 8
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 17 * * 1-5"
	}
	if cfg.Report.MarketSuffix == "" {
		cfg.Report.MarketSuffix = ".AX"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stonkwatch.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.Quotes.WindowDays < 2 {
		return fmt.Errorf("quotes.window_days must be at least 2")
	}
	if c.Quotes.TimeoutSeconds <= 0 {
		return fmt.Errorf("quotes.timeout_seconds must be positive")
	}
	for i, e := range c.Universe {
		if e.Symbol == "" {
			return fmt.Errorf("universe[%d]: symbol is required", i)
		}
	}
	return nil
}
