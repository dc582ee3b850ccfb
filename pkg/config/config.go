package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	BotToken     string
	DatabaseURL  string
	Port         string
	IsProduction bool
	HistoryLimit int
	StoreTimeout time.Duration
	PollTimeout  int // Telegram long-poll timeout in seconds
}

// LoadConfig loads configuration from environment variables and .env file if
// present. BOT_TOKEN and PGSQL_URL have no usable defaults; the caller treats
// their absence as startup-fatal.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("BOT_TOKEN", "")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("HISTORY_LIMIT", 10)
	viper.SetDefault("STORE_TIMEOUT", "5s")
	viper.SetDefault("POLL_TIMEOUT_SECONDS", 60)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.BotToken = viper.GetString("BOT_TOKEN")
	if cfg.BotToken == "" {
		log.Println("Warning: BOT_TOKEN environment variable not set.")
	}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.HistoryLimit = viper.GetInt("HISTORY_LIMIT")
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 10
		log.Printf("Warning: Invalid HISTORY_LIMIT. Defaulting to %d.\n", cfg.HistoryLimit)
	}

	storeTimeoutStr := viper.GetString("STORE_TIMEOUT")
	storeTimeout, err := time.ParseDuration(storeTimeoutStr)
	if err != nil || storeTimeout <= 0 {
		storeTimeout = 5 * time.Second
		log.Printf("Warning: Invalid value for STORE_TIMEOUT ('%s'). Defaulting to %s.\n", storeTimeoutStr, storeTimeout)
	}
	cfg.StoreTimeout = storeTimeout

	cfg.PollTimeout = viper.GetInt("POLL_TIMEOUT_SECONDS")
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 60
		log.Printf("Warning: Invalid POLL_TIMEOUT_SECONDS. Defaulting to %d.\n", cfg.PollTimeout)
	}

	return cfg, nil
}
