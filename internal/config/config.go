package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is read once at process start and treated as immutable afterwards.
type Config struct {
	PaystackSecretKey string
	PaystackBaseURL   string
	AppBaseURL        string
	Port              string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		PaystackSecretKey: strings.TrimSpace(os.Getenv("PAYSTACK_SECRET_KEY")),
		PaystackBaseURL:   strings.TrimSpace(os.Getenv("PAYSTACK_BASE_URL")),
		AppBaseURL:        strings.TrimSpace(os.Getenv("APP_BASE_URL")),
		Port:              strings.TrimSpace(os.Getenv("PORT")),
	}

	if cfg.PaystackBaseURL == "" {
		cfg.PaystackBaseURL = "https://api.paystack.co"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.PaystackSecretKey == "" {
		return Config{}, errors.New("PAYSTACK_SECRET_KEY is not set")
	}
	if cfg.AppBaseURL == "" {
		return Config{}, errors.New("APP_BASE_URL is not set")
	}

	return cfg, nil
}

// PlanCodeOverride resolves a per-plan recurring code override, falling back
// to the compiled-in default when the variable is unset.
func PlanCodeOverride(envKey, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	return fallback
}
