package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr     string
	BaseURL        string
	MaxUploadBytes int
	RateLimit      int // requests per minute per IP

	// Session
	SessionSecret      string // Used for deriving the cookie encryption key (min 32 chars)
	SessionIdleTimeout time.Duration
	RedisURL           string // Empty keeps sessions in memory

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// OIDC (optional; all routes are public when OIDCIssuer is empty)
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Classification
	DictionaryMode string // "live" or "snapshot"
	MetricsEnabled bool

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Marketing Tactics Classifier"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER

	// File holds settings loaded from CONFIG_FILE, nil when absent.
	File *YAMLConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		ServerAddr:         getEnv("SERVER_ADDR", ":3000"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:3000"),
		MaxUploadBytes:     getEnvInt("MAX_UPLOAD_BYTES", 10*1024*1024),
		RateLimit:          getEnvInt("RATE_LIMIT_PER_MINUTE", 100),
		SessionSecret:      getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		SessionIdleTimeout: getEnvDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		RedisURL:           getEnv("REDIS_URL", ""),
		CORSOrigins:        getEnv("CORS_ORIGINS", ""),
		OIDCIssuer:         getEnv("OIDC_ISSUER", ""),
		OIDCClientID:       getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret:   getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:    getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),
		DictionaryMode:     strings.ToLower(getEnv("DICTIONARY_MODE", "live")),
		MetricsEnabled:     getEnv("METRICS_ENABLED", "true") == "true",

		SiteTitle:   getEnv("SITE_TITLE", "Marketing Tactics Classifier"),
		SiteTagline: getEnv("SITE_TAGLINE", "Upload your dataset and customize dictionaries to classify marketing tactics"),
		SiteFooter:  getEnv("SITE_FOOTER", "Marketing Tactics Classifier"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsAuthEnabled returns true if an OIDC issuer is configured.
func (c *Config) IsAuthEnabled() bool {
	return c.OIDCIssuer != ""
}

// IsRedisEnabled returns true if sessions should be stored in Redis.
func (c *Config) IsRedisEnabled() bool {
	return c.RedisURL != ""
}
