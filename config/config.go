package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvBotToken   = "TELEGRAM_BOT_TOKEN"
	EnvChatID     = "TELEGRAM_CHAT_ID"
	EnvConfigPath = "FACT_CLI_CONFIG"
)

// Config holds the Telegram settings used by bot mode.
type Config struct {
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN" env-description:"Telegram bot token"`
	TelegramChatID string `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID" env-description:"Destination chat id (signed 64-bit integer)"`

	// ChatID is TelegramChatID parsed by Load.
	ChatID int64 `yaml:"-"`
}

// Load reads an optional YAML file, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetConfigPath returns the config file path from the environment, or "".
func GetConfigPath() string {
	return os.Getenv(EnvConfigPath)
}

// LoadDotEnv loads variables from the given files (default ".env") without
// overriding variables already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Describe lists the environment variables understood by Load.
func Describe() string {
	header := "Environment variables (bot mode):"
	text, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return ""
	}
	return text
}

func validate(cfg *Config) error {
	if cfg.TelegramToken == "" {
		return fmt.Errorf("%s environment variable not set", EnvBotToken)
	}
	if cfg.TelegramChatID == "" {
		return fmt.Errorf("%s environment variable not set", EnvChatID)
	}
	id, err := strconv.ParseInt(cfg.TelegramChatID, 10, 64)
	if err != nil {
		return fmt.Errorf("%s %q is not a valid chat id: %w", EnvChatID, cfg.TelegramChatID, err)
	}
	cfg.ChatID = id
	return nil
}
