package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	Database DatabaseConfig
	JWT      JWTConfig
	Session  SessionConfig
	Admins   []string
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type SessionConfig struct {
	Secret string
	Secure bool
}

func Load() (*Config, error) {
	godotenv.Load()

	admins := []string{}
	if adminsStr := os.Getenv("ADMIN_EMAILS"); adminsStr != "" {
		admins = strings.Split(adminsStr, ",")
		for i := range admins {
			admins[i] = strings.TrimSpace(admins[i])
		}
	}

	ttl := 24 * time.Hour
	if ttlStr := os.Getenv("JWT_TTL"); ttlStr != "" {
		if parsed, err := time.ParseDuration(ttlStr); err == nil && parsed > 0 {
			ttl = parsed
		}
	}

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
			TTL:    ttl,
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", ""),
			Secure: getEnv("SESSION_SECURE", "false") == "true",
		},
		Admins: admins,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
