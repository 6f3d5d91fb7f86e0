package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	RateAPIBaseURL     string        `validate:"required,url"`
	BaseCurrency       string        `validate:"required,len=3,uppercase"`
	RateCacheTTL       time.Duration `validate:"gt=0"`
	RateRequestTimeout time.Duration `validate:"gt=0"`
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Every setting has a working default, so an empty environment is
// valid.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("RATE_API_BASE_URL", "https://open.er-api.com/v6/latest")
	viper.SetDefault("BASE_CURRENCY", "USD")
	viper.SetDefault("RATE_CACHE_TTL", "600s")
	viper.SetDefault("RATE_REQUEST_TIMEOUT", "5s")

	viper.AutomaticEnv()

	cfg := &Config{
		RateAPIBaseURL: viper.GetString("RATE_API_BASE_URL"),
		BaseCurrency:   viper.GetString("BASE_CURRENCY"),
	}

	ttl, err := time.ParseDuration(viper.GetString("RATE_CACHE_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_CACHE_TTL: %w", err)
	}
	cfg.RateCacheTTL = ttl

	timeout, err := time.ParseDuration(viper.GetString("RATE_REQUEST_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_REQUEST_TIMEOUT: %w", err)
	}
	cfg.RateRequestTimeout = timeout

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
