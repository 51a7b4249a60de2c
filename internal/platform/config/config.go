package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret                  string
	JWTExpiryDuration          time.Duration
	JWTIssuer                  string
	RefreshTokenExpiryDuration time.Duration

	// External OAuth providers
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	FrontendBaseURL    string

	// Exchange-rate providers
	LiveRateBaseURL       string
	HistoricalRateBaseURL string
	ProviderTimeout       time.Duration

	// Dashboard bookmarks older than this are refreshed automatically.
	BookmarkStaleAfter time.Duration
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables override .env values override defaults.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "fxdeck-backend")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("LIVE_RATE_BASE_URL", "https://api.exchangerate-api.com/v4")
	viper.SetDefault("HISTORICAL_RATE_BASE_URL", "https://api.frankfurter.dev/v1")
	viper.SetDefault("PROVIDER_TIMEOUT", "3s")
	viper.SetDefault("BOOKMARK_STALE_AFTER", "1h")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		JWTIssuer:          viper.GetString("JWT_ISSUER"),
		GoogleClientID:     viper.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: viper.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  viper.GetString("GOOGLE_REDIRECT_URL"),
		FrontendBaseURL:    viper.GetString("FRONTEND_BASE_URL"),

		LiveRateBaseURL:       viper.GetString("LIVE_RATE_BASE_URL"),
		HistoricalRateBaseURL: viper.GetString("HISTORICAL_RATE_BASE_URL"),
	}

	var err error
	if cfg.JWTExpiryDuration, err = parseDuration("JWT_EXPIRY_DURATION"); err != nil {
		return nil, err
	}
	if cfg.RefreshTokenExpiryDuration, err = parseDuration("REFRESH_TOKEN_EXPIRY_DURATION"); err != nil {
		return nil, err
	}
	if cfg.ProviderTimeout, err = parseDuration("PROVIDER_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.BookmarkStaleAfter, err = parseDuration("BOOKMARK_STALE_AFTER"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseDuration(key string) (time.Duration, error) {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	return d, nil
}
