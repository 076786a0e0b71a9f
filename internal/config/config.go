package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string
	DataDir     string

	// Insights collaborator (generative-text API)
	InsightsURL     string
	InsightsAPIKey  string
	InsightsModel   string
	InsightsTimeout time.Duration
	InsightsRetries int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		ServiceName:    getEnv("SERVICE_NAME", "clinic-stock"),
		Version:        getEnv("VERSION", "dev"),
		Environment:    getEnv("ENVIRONMENT", "dev"),
		DataDir:        getEnv("DATA_DIR", "data"),
		InsightsURL:    getEnv("INSIGHTS_API_URL", ""),
		InsightsAPIKey: getEnv("INSIGHTS_API_KEY", ""),
		InsightsModel:  getEnv("INSIGHTS_MODEL", "gemini-1.5-flash"),
	}

	portStr := getEnv("PORT", "3000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	timeoutStr := getEnv("INSIGHTS_TIMEOUT_SECONDS", "15")
	timeoutSec, err := strconv.Atoi(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid INSIGHTS_TIMEOUT_SECONDS value: %w", err)
	}
	cfg.InsightsTimeout = time.Duration(timeoutSec) * time.Second

	retriesStr := getEnv("INSIGHTS_RETRIES", "2")
	retries, err := strconv.Atoi(retriesStr)
	if err != nil {
		return nil, fmt.Errorf("invalid INSIGHTS_RETRIES value: %w", err)
	}
	cfg.InsightsRetries = retries

	// An explicitly empty DATA_DIR would leave the store unusable
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
