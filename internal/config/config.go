package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// BotURL is the base URL of the trading bot's HTTP API.
	BotURL         string        `yaml:"bot_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`

	FastInterval       time.Duration `yaml:"fast_interval"`
	SlowInterval       time.Duration `yaml:"slow_interval"`
	ToastTTL           time.Duration `yaml:"toast_ttl"`
	ActionRefreshDelay time.Duration `yaml:"action_refresh_delay"`
	LogRefetchDelay    time.Duration `yaml:"log_refetch_delay"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	Telegram TelegramConfig `yaml:"telegram"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type TelegramConfig struct {
	Enabled  bool   `yaml:"enabled"`
	BotToken string `yaml:"bot_token"`
	ChatID   string `yaml:"chat_id"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

func Default() Config {
	return Config{
		BotURL:             "http://127.0.0.1:5000",
		RequestTimeout:     10 * time.Second,
		FastInterval:       5 * time.Second,
		SlowInterval:       10 * time.Second,
		ToastTTL:           3 * time.Second,
		ActionRefreshDelay: 2 * time.Second,
		LogRefetchDelay:    2 * time.Second,
		LogLevel:           "info",
		LogFormat:          "pretty",
		Metrics: MetricsConfig{
			Addr: ":9105",
		},
	}
}

func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("ARABICBOT_URL")); v != "" {
		c.BotURL = v
	}
	if v := os.Getenv("ARABICBOT_TELEGRAM_TOKEN"); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv("ARABICBOT_TELEGRAM_CHAT"); v != "" {
		c.Telegram.ChatID = v
	}
	if v := strings.TrimSpace(os.Getenv("ARABICBOT_LOG_LEVEL")); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("ARABICBOT_METRICS"); v != "" {
		c.Metrics.Enabled = strings.EqualFold(v, "true") || v == "1"
	}
}

// Validate rejects cadence settings the scheduler cannot honor.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BotURL) == "" {
		return fmt.Errorf("config: bot_url is required")
	}
	if c.FastInterval <= 0 {
		return fmt.Errorf("config: fast_interval must be positive")
	}
	if c.SlowInterval <= c.FastInterval {
		return fmt.Errorf("config: slow_interval must exceed fast_interval")
	}
	if c.ToastTTL <= 0 {
		return fmt.Errorf("config: toast_ttl must be positive")
	}
	return nil
}
