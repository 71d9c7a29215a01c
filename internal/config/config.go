package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	API      APIConfig
	Session  SessionConfig
	Snapshot SnapshotConfig
	CORS     CORSConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// APIConfig describes the HR REST API this front-end renders.
type APIConfig struct {
	BaseURL  string
	Timeout  time.Duration
	RetryMax int
}

// SessionConfig holds session token and notification cookie settings
type SessionConfig struct {
	Secret      string
	CookieName  string
	FlashSecret string
	LoginURL    string
}

type SnapshotConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded, using process environment", "error", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "3000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// API configuration
	apiTimeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}
	apiRetryMax, err := strconv.Atoi(getEnv("API_RETRY_MAX", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_RETRY_MAX: %w", err)
	}

	config.API = APIConfig{
		BaseURL:  strings.TrimRight(getEnv("API_BASE_URL", ""), "/"),
		Timeout:  apiTimeout,
		RetryMax: apiRetryMax,
	}

	// Session configuration
	config.Session = SessionConfig{
		Secret:      getEnv("SESSION_SECRET", ""),
		CookieName:  getEnv("SESSION_COOKIE", "jwt"),
		FlashSecret: getEnv("FLASH_SECRET", ""),
		LoginURL:    getEnv("LOGIN_URL", "/login"),
	}

	// Snapshot cache configuration
	snapshotTTL, err := time.ParseDuration(getEnv("SNAPSHOT_TTL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SNAPSHOT_TTL: %w", err)
	}
	sweepInterval, err := time.ParseDuration(getEnv("SNAPSHOT_SWEEP_INTERVAL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SNAPSHOT_SWEEP_INTERVAL: %w", err)
	}

	config.Snapshot = SnapshotConfig{
		TTL:           snapshotTTL,
		SweepInterval: sweepInterval,
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("API_BASE_URL must be an http(s) URL")
	}
	if c.API.RetryMax < 0 {
		return fmt.Errorf("API_RETRY_MAX must not be negative")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.Session.FlashSecret == "" {
		return fmt.Errorf("FLASH_SECRET is required")
	}
	if c.Snapshot.SweepInterval <= 0 {
		return fmt.Errorf("SNAPSHOT_SWEEP_INTERVAL must be positive")
	}
	return nil
}

// IsProduction reports whether the app runs with APP_ENV=production
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// LogLevel parses LOG_LEVEL, defaulting to info
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
