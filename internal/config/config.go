package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis config (draft storage)
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Records system config
	UpstreamBaseURL string        `env:"UPSTREAM_BASE_URL"`
	UpstreamAPIKey  string        `env:"UPSTREAM_API_KEY"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`

	// Realtime stream config
	RealtimeToken      string        `env:"REALTIME_TOKEN"`
	RealtimeMaxRetries int           `env:"REALTIME_MAX_RETRIES" envDefault:"5"`
	RealtimeBaseDelay  time.Duration `env:"REALTIME_BASE_DELAY" envDefault:"1s"`
	RealtimeMaxDelay   time.Duration `env:"REALTIME_MAX_DELAY" envDefault:"30s"`

	// Citizen session config
	JWTSecret string `env:"JWT_SECRET"`

	// Evidence upload policy: silent, warn or fail
	EvidenceUploadPolicy string `env:"EVIDENCE_UPLOAD_POLICY" envDefault:"silent"`

	// Allowed CORS origins
	CORSOrigins []string `env:"CORS_ORIGINS"`
}

// LoadConfig loads the configuration from environment variables and an
// optional .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		UpstreamBaseURL:      os.Getenv("UPSTREAM_BASE_URL"),
		UpstreamAPIKey:       os.Getenv("UPSTREAM_API_KEY"),
		UpstreamTimeout:      getEnvAsDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		RealtimeToken:        os.Getenv("REALTIME_TOKEN"),
		RealtimeMaxRetries:   getEnvAsInt("REALTIME_MAX_RETRIES", 5),
		RealtimeBaseDelay:    getEnvAsDuration("REALTIME_BASE_DELAY", time.Second),
		RealtimeMaxDelay:     getEnvAsDuration("REALTIME_MAX_DELAY", 30*time.Second),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		EvidenceUploadPolicy: getEnv("EVIDENCE_UPLOAD_POLICY", "silent"),
	}

	originsStr := os.Getenv("CORS_ORIGINS")
	if originsStr != "" {
		cfg.CORSOrigins = strings.Split(originsStr, ",")
		for i, origin := range cfg.CORSOrigins {
			cfg.CORSOrigins[i] = strings.TrimSpace(origin)
		}
	}

	if cfg.UpstreamBaseURL == "" {
		return nil, fmt.Errorf("UPSTREAM_BASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

// getEnv returns the environment variable value or the default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the environment variable value as int or the default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns the environment variable value as time.Duration
// or the default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
