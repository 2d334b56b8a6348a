package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	defaultAddr      = ":8080"
	defaultDSN       = "windowupgrades.db"
	defaultFromEmail = "no-reply@windowupgrades.example"
	defaultFromName  = "Window Upgrades"
)

// Config is built once at startup and handed to each component
// explicitly; there is no ambient process-wide state.
type Config struct {
	AppEnv string
	Addr   string
	DSN    string

	// JWTSecret verifies tokens minted by the identity provider.
	JWTSecret string

	// Notification sink. Empty SendGridAPIKey selects the log-only sender.
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	// NotifyEmail is the business inbox alerted on new quote requests.
	NotifyEmail string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:         strings.ToLower(getEnv("APP_ENV", "dev")),
		Addr:           getEnv("ADDR", defaultAddr),
		DSN:            getEnv("DATABASE_URL", defaultDSN),
		JWTSecret:      strings.TrimSpace(os.Getenv("JWT_SECRET")),
		SendGridAPIKey: strings.TrimSpace(os.Getenv("SENDGRID_API_KEY")),
		FromEmail:      getEnv("FROM_EMAIL", defaultFromEmail),
		FromName:       getEnv("FROM_NAME", defaultFromName),
		NotifyEmail:    strings.TrimSpace(os.Getenv("NOTIFY_EMAIL")),
	}

	if cfg.JWTSecret == "" {
		if cfg.AppEnv != "dev" {
			return nil, fmt.Errorf("JWT_SECRET is required outside dev")
		}
		cfg.JWTSecret = "change-me-jwt-secret"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
