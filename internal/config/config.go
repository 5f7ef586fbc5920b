package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort            = "8080"
	defaultJWTTTL          = "24h"
	defaultPricingCacheTTL = "5m"
	defaultJWTSecret       = "change-me-jwt-secret"
)

// Config carries every runtime knob as a named, typed field. Values come
// from the environment with documented defaults; main loads .env first via
// godotenv so local development needs no exported variables.
type Config struct {
	AppEnv          string
	Port            string
	DatabaseURL     string
	JWTSecret       string
	JWTTTL          time.Duration
	RedisAddr       string
	PricingCacheTTL time.Duration
	AllowedOrigins  []string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = getenv("PORT", defaultPort)
	cfg.DatabaseURL = getenv("DATABASE_URL", "nerdspace.db")
	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))

	cfg.JWTSecret = getenv("JWT_SECRET", defaultJWTSecret)
	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("config: JWT_SECRET must be set in prod")
	}

	var err error
	cfg.JWTTTL, err = parseDuration("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.PricingCacheTTL, err = parseDuration("PRICING_CACHE_TTL", defaultPricingCacheTTL)
	if err != nil {
		return nil, err
	}

	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	raw := getenv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a duration: %w", key, raw, err)
	}
	return d, nil
}
