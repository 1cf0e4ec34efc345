package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// EnvConfigPath overrides the config location when no explicit path is
// given on the command line.
const EnvConfigPath = "TRADING_SUPPORT_CONFIG"

// DefaultPath is used when neither an explicit path nor the
// environment variable is set.
const DefaultPath = "config/config.json"

// AuthHeaders holds the header names used by the exchange's signing
// scheme. The names are configurable because the exchange can rename
// them without changing the protocol.
type AuthHeaders struct {
	Key       string `json:"key"`       // carries the API key verbatim
	Signature string `json:"signature"` // carries the hex HMAC signature
	Timestamp string `json:"timestamp"` // carries the Unix timestamp string
}

// Config is read once per invocation and never mutated afterwards.
type Config struct {
	APIKey           string      `json:"api_key"`
	APISecret        string      `json:"api_secret"`
	BaseURL          string      `json:"base_url"`
	PaperTrade       *bool       `json:"paper_trade"`
	TelegramTarget   string      `json:"telegram_target"`
	TelegramBotToken string      `json:"telegram_bot_token"`
	AuthHeaders      AuthHeaders `json:"auth_headers"`
	Timezone         string      `json:"timezone"`
}

// Load resolves the config path (explicit argument beats the
// TRADING_SUPPORT_CONFIG environment variable beats the default),
// parses the JSON file, fills in defaults, and validates the secrets
// eagerly so nothing downstream runs with an unusable config.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found (%s): copy config/config.example.json and fill in your keys", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.mercadobitcoin.net/api/v4"
	}
	if c.PaperTrade == nil {
		paper := true
		c.PaperTrade = &paper
	}
	if c.AuthHeaders.Key == "" {
		c.AuthHeaders.Key = "X-ACCESS-KEY"
	}
	if c.AuthHeaders.Signature == "" {
		c.AuthHeaders.Signature = "X-ACCESS-SIGN"
	}
	if c.AuthHeaders.Timestamp == "" {
		c.AuthHeaders.Timestamp = "X-ACCESS-TIMESTAMP"
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
}

// Validate checks the required secrets are present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key must be provided in config")
	}
	if c.APISecret == "" {
		return fmt.Errorf("api_secret must be provided in config")
	}
	return nil
}
