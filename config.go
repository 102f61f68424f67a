package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port        string
	Env         string
	RedisURL    string
	CatalogPath string

	StripeSecretKey     string
	StripeWebhookSecret string

	PrintfulAPIKey      string
	PrintfulAutoConfirm bool

	// Countries the Stripe checkout page will collect shipping addresses for.
	AllowedCountries []string

	// Orders at or above the threshold ship free; below it the flat fee is
	// added as its own line item.
	FreeShippingThresholdCents int64
	ShippingFeeCents           int64
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                       getEnv("PORT", "8090"),
		Env:                        getEnv("APP_ENV", "development"),
		RedisURL:                   getEnv("REDIS_URL", "redis://localhost:6379/0"),
		CatalogPath:                getEnv("CATALOG_PATH", "products.json"),
		StripeSecretKey:            os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret:        os.Getenv("STRIPE_WEBHOOK_SECRET"),
		PrintfulAPIKey:             os.Getenv("PRINTFUL_API_KEY"),
		PrintfulAutoConfirm:        getEnvBool("PRINTFUL_AUTO_CONFIRM", false),
		AllowedCountries:           splitCSV(getEnv("SHIPPING_ALLOWED_COUNTRIES", "US,CA,GB,AU,NZ")),
		FreeShippingThresholdCents: getEnvInt64("FREE_SHIPPING_THRESHOLD_CENTS", 5000),
		ShippingFeeCents:           getEnvInt64("SHIPPING_FEE_CENTS", 500),
	}

	if cfg.StripeSecretKey == "" || cfg.StripeWebhookSecret == "" {
		return nil, fmt.Errorf("missing required environment variables")
	}
	if len(cfg.AllowedCountries) == 0 {
		return nil, fmt.Errorf("SHIPPING_ALLOWED_COUNTRIES is empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
