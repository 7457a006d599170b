// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string
	Env  string

	// MongoDB settings
	MongoURI      string
	MongoDatabase string

	// Redis settings (empty disables redis-backed features)
	RedisURL string

	// Authentication
	JWTSecret     string
	JWTExpiration time.Duration

	// CORS
	CORSOrigins []string

	// Rate limiting (fixed window)
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Fetch quota for users without an active subscription
	FetchLimit int

	// Uploads
	UploadDir      string
	UploadMaxBytes int64
}

// Load returns a new Config struct populated from environment variables.
// A .env file is loaded first when present.
func Load() *Config {
	// Try to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:     getEnv("MONGO_DATABASE", "artnursing"),
		RedisURL:          getEnv("REDIS_URL", ""),
		JWTSecret:         getEnv("JWT_SECRET", "change-me-in-production"),
		JWTExpiration:     getEnvDuration("JWT_EXPIRATION", 24*time.Hour),
		CORSOrigins:       getEnvSlice("CORS_ORIGINS", []string{"*"}),
		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 5),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		FetchLimit:        getEnvInt("FETCH_LIMIT", 2),
		UploadDir:         getEnv("UPLOAD_DIR", "./public/uploads"),
		UploadMaxBytes:    getEnvInt64("UPLOAD_MAX_BYTES", 10<<20),
	}

	if cfg.IsProduction() && cfg.JWTSecret == "change-me-in-production" {
		log.Fatal("[config] JWT_SECRET must be set in production")
	}

	return cfg
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvSlice retrieves a comma-separated environment variable as a slice.
func getEnvSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
