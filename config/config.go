// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	// Server settings
	Port    string
	GinMode string

	// Database
	DatabaseURL string

	// Token signing
	JWTSecret    string
	JWTAlgorithm string
	TokenTTL     time.Duration

	// Response cache for the post list endpoint
	CacheSize int
	CacheTTL  time.Duration

	// CORS
	CORSAllowedOrigins []string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		DatabaseURL: getEnv("DATABASE_URL", "postboard.db"),

		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTAlgorithm: getEnv("JWT_ALGORITHM", "HS256"),
		TokenTTL:     time.Duration(getEnvAsInt("TOKEN_TTL_MINUTES", 15)) * time.Minute,

		CacheSize: getEnvAsInt("CACHE_SIZE", 100),
		CacheTTL:  time.Duration(getEnvAsInt("CACHE_TTL_MINUTES", 5)) * time.Minute,

		CORSAllowedOrigins: []string{getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000")},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("CACHE_SIZE must be positive")
	}
	return nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
