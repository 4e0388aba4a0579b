package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Defaults suit local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Redis backs the rate limiter only; store data never leaves the process.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Rate limiting (per client IP)
	RateLimitEnabled bool
	RateLimitMax     int
	RateLimitWindow  time.Duration

	// CORS
	CORSAllowedOrigins string // comma-separated

	// /api/debug/vars and /api/metrics
	DebugMetricsEnabled bool

	// HTTP access log toggle
	HTTPLogEnabled bool

	ShutdownTimeout time.Duration

	// Seeder
	SeedAPIURL   string
	SeedRetryMax int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "go-ddd-usergroup"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		RateLimitEnabled: getbool("RATE_LIMIT_ENABLED", false),
		RateLimitMax:     getint("RATE_LIMIT_MAX", 300),
		RateLimitWindow:  getdur("RATE_LIMIT_WINDOW", time.Minute),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", true),
		HTTPLogEnabled:      getbool("HTTP_LOG_ENABLED", false),

		ShutdownTimeout: getdur("SHUTDOWN_TIMEOUT", 10*time.Second),

		SeedAPIURL:   getenv("SEED_API_URL", "http://localhost:8080/api"),
		SeedRetryMax: getint("SEED_RETRY_MAX", 5),
	}
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

// RateLimitActive reports whether the limiter has a redis to talk to.
func (c *Config) RateLimitActive() bool {
	return c.RateLimitEnabled && c.RedisAddr != ""
}
