package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all configuration for the application
type Config struct {
	Port            string
	DatabaseURL     string // Chatbot database with the message/appointment tables
	Version         string
	LogLevel        string
	ReportCacheTTL  time.Duration // How long computed report rowsets are memoized
	SnapshotTimeout time.Duration // Per-query timeout when materializing a snapshot
}

// Load initializes and returns application configuration
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		Version:         getEnv("VERSION", "1.0.0"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ReportCacheTTL:  time.Duration(getEnvInt("REPORT_CACHE_TTL_SECONDS", 60)) * time.Second,
		SnapshotTimeout: time.Duration(getEnvInt("SNAPSHOT_QUERY_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as integer with a default fallback
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// SetupLogger configures zerolog with JSON output and single-line format
func (c *Config) SetupLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "copilot").
		Str("version", c.Version).
		Logger()

	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	return logger.Level(level)
}
