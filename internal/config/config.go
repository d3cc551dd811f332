// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/splits.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// ESPN defaults
// --------------------------------------------------------------------------

const (
	DefaultESPNBaseURL = "https://site.web.api.espn.com/apis/common/v3/sports/basketball/nba"

	// ESPN rejects requests without a browser-looking agent.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
)

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// ESPN
	ESPNBaseURL           string
	ESPNUserAgent         string
	ESPNHTTPTimeout       time.Duration // 0 = no client timeout
	ESPNRequestsPerMinute int           // 0 = unlimited

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool
	LogLevel    string

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		ESPNBaseURL:           strings.TrimRight(envOr("ESPN_BASE_URL", DefaultESPNBaseURL), "/"),
		ESPNUserAgent:         envOr("ESPN_USER_AGENT", DefaultUserAgent),
		ESPNHTTPTimeout:       envDuration("ESPN_HTTP_TIMEOUT", 0),
		ESPNRequestsPerMinute: envInt("ESPN_REQUESTS_PER_MINUTE", 120),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),
		LogLevel:    envOr("LOG_LEVEL", "info"),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,
	}

	if cfg.ESPNBaseURL == "" {
		return nil, fmt.Errorf("ESPN_BASE_URL must not be empty")
	}
	if strings.TrimSpace(cfg.ESPNUserAgent) == "" {
		return nil, fmt.Errorf("ESPN_USER_AGENT must not be empty")
	}
	if cfg.APIPort <= 0 || cfg.APIPort > 65535 {
		return nil, fmt.Errorf("API_PORT out of range: %d", cfg.APIPort)
	}
	if cfg.ESPNRequestsPerMinute < 0 {
		return nil, fmt.Errorf("ESPN_REQUESTS_PER_MINUTE must be >= 0")
	}
	return cfg, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SlogLevel maps LOG_LEVEL (and DEBUG) onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

// envDuration accepts Go durations ("15s") or a bare number of seconds.
func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
