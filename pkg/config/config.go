// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the scraper, cache, and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Christoph9211/video-recommender/core/scraper"
)

// Config holds all application configuration
type Config struct {
	// Scraper contains retry, backoff, and identity settings
	Scraper ScraperConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// SitesFile is the path to the YAML site registry
	SitesFile string

	// LogLevel controls logger verbosity (debug/info/warn/error)
	LogLevel string
}

// ScraperConfig holds fetch orchestration configuration
type ScraperConfig struct {
	// UserAgent is the identity presented on the first attempt
	UserAgent string

	// RetryAttempts is the total number of fetch attempts per site
	RetryAttempts int

	// BackoffStrategy selects the delay curve (exponential/linear)
	BackoffStrategy string

	// BaseDelay is the first retry delay in seconds
	BaseDelay float64

	// DelayMultiplier is the exponential growth factor
	DelayMultiplier float64

	// MaxRetryDelay caps the computed delay in seconds
	MaxRetryDelay float64

	// AttemptTimeout bounds a single fetch attempt in seconds
	AttemptTimeout float64

	// RotateIdentities enables identity rotation on retries
	RotateIdentities bool

	// IdentityPool lists the identities cycled on retries
	IdentityPool []string

	// MaxConcurrent bounds how many sites are fetched at once
	MaxConcurrent int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// LoadFromEnv loads configuration from environment variables. Unset
// variables fall back to documented defaults; set-but-unparsable values
// are a hard error, never silently coerced.
func LoadFromEnv() (*Config, error) {
	defaults := scraper.DefaultFetchConfig()

	retryAttempts, err := getEnvAsIntOrDefault("SCRAPER_RETRY_ATTEMPTS", defaults.MaxAttempts)
	if err != nil {
		return nil, err
	}
	baseDelay, err := getEnvAsFloatOrDefault("SCRAPER_BASE_DELAY", defaults.BaseDelay.Seconds())
	if err != nil {
		return nil, err
	}
	delayMultiplier, err := getEnvAsFloatOrDefault("SCRAPER_DELAY_MULTIPLIER", defaults.DelayMultiplier)
	if err != nil {
		return nil, err
	}
	maxRetryDelay, err := getEnvAsFloatOrDefault("SCRAPER_MAX_RETRY_DELAY", defaults.MaxDelay.Seconds())
	if err != nil {
		return nil, err
	}
	attemptTimeout, err := getEnvAsFloatOrDefault("SCRAPER_ATTEMPT_TIMEOUT", defaults.AttemptTimeout.Seconds())
	if err != nil {
		return nil, err
	}
	rotateIdentities, err := getEnvAsBoolOrDefault("SCRAPER_ROTATE_IDENTITIES", defaults.RotateIdentities)
	if err != nil {
		return nil, err
	}
	maxConcurrent, err := getEnvAsIntOrDefault("SCRAPER_MAX_CONCURRENT", 2)
	if err != nil {
		return nil, err
	}
	redisDB, err := getEnvAsIntOrDefault("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Scraper: ScraperConfig{
			UserAgent:        getEnvOrDefault("SCRAPER_USER_AGENT", defaults.DefaultIdentity),
			RetryAttempts:    retryAttempts,
			BackoffStrategy:  getEnvOrDefault("SCRAPER_BACKOFF_STRATEGY", string(defaults.Strategy)),
			BaseDelay:        baseDelay,
			DelayMultiplier:  delayMultiplier,
			MaxRetryDelay:    maxRetryDelay,
			AttemptTimeout:   attemptTimeout,
			RotateIdentities: rotateIdentities,
			IdentityPool:     getEnvAsListOrDefault("SCRAPER_IDENTITY_POOL", defaults.IdentityPool),
			MaxConcurrent:    maxConcurrent,
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       redisDB,
			},
		},
		SitesFile: getEnvOrDefault("SITES_FILE", "sites.yml"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// FetchConfig converts the scraper settings into the orchestrator's config
func (c *Config) FetchConfig() scraper.FetchConfig {
	return scraper.FetchConfig{
		MaxAttempts:      c.Scraper.RetryAttempts,
		Strategy:         scraper.BackoffStrategy(c.Scraper.BackoffStrategy),
		BaseDelay:        secondsToDuration(c.Scraper.BaseDelay),
		DelayMultiplier:  c.Scraper.DelayMultiplier,
		MaxDelay:         secondsToDuration(c.Scraper.MaxRetryDelay),
		AttemptTimeout:   secondsToDuration(c.Scraper.AttemptTimeout),
		RotateIdentities: c.Scraper.RotateIdentities,
		DefaultIdentity:  c.Scraper.UserAgent,
		IdentityPool:     c.Scraper.IdentityPool,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	fetchCfg := c.FetchConfig()
	if err := fetchCfg.Validate(); err != nil {
		return err
	}

	if c.Scraper.MaxConcurrent < 1 {
		return errors.New("max concurrent site fetches must be at least 1")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log level must be one of debug, info, warn, error")
	}

	return nil
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int, the
// default when unset, or an error when set but unparsable
func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q is not an integer", key, value)
	}
	return parsed, nil
}

// getEnvAsFloatOrDefault returns the environment variable as float64, the
// default when unset, or an error when set but unparsable
func getEnvAsFloatOrDefault(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q is not a number", key, value)
	}
	return parsed, nil
}

// getEnvAsBoolOrDefault returns the environment variable as bool, the
// default when unset, or an error when set but unparsable
func getEnvAsBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: %q is not a boolean", key, value)
	}
	return parsed, nil
}

// getEnvAsListOrDefault splits a comma-separated environment variable or returns a default
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}

	if len(list) == 0 {
		return defaultValue
	}
	return list
}
