package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL          string
	Port                 string
	IsProduction         bool
	JWTSecret            string
	JWTExpiry            time.Duration
	JWTIssuer            string
	CronSecret           string
	RateLimitPerMinute   int
	RetainedEarningsName string
}

// LoadConfig loads configuration from environment variables. A .env file is
// loaded first when present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_EXPIRY", "24h")
	v.SetDefault("JWT_ISSUER", "spbu-backend")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	v.SetDefault("RETAINED_EARNINGS_NAME", "Laba Ditahan")

	cfg := &Config{
		DatabaseURL:          v.GetString("PGSQL_URL"),
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTExpiry:            v.GetDuration("JWT_EXPIRY"),
		JWTIssuer:            v.GetString("JWT_ISSUER"),
		CronSecret:           v.GetString("CRON_SECRET"),
		RateLimitPerMinute:   v.GetInt("RATE_LIMIT_PER_MINUTE"),
		RetainedEarningsName: v.GetString("RETAINED_EARNINGS_NAME"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}
	if cfg.JWTExpiry <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRY must be a positive duration")
	}

	return cfg, nil
}
