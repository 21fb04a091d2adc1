package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all server configuration
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBPath string

	// Admin API authentication
	AdminAPIKey      string
	DisableAdminAuth bool

	// Extraction limits
	MaxTextBytes int

	// Result cache
	CacheTTL     time.Duration
	DisableCache bool

	// Rate limiting
	DisableRateLimit bool

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables with defaults.
// If a .env file exists, it will be loaded first.
func Load() (*Config, error) {
	loadEnvFile(".env")

	config := &Config{
		ServerPort: getEnvOrDefault("SERVER_PORT", "8080"),
		ServerHost: getEnvOrDefault("SERVER_HOST", "localhost"),

		DBPath: getEnvOrDefault("DB_PATH", "./extractions.db"),

		AdminAPIKey:      os.Getenv("ADMIN_API_KEY"),
		DisableAdminAuth: getEnvBoolOrDefault("DISABLE_ADMIN_AUTH", false),

		MaxTextBytes: getEnvIntOrDefault("MAX_TEXT_BYTES", 1<<20),

		CacheTTL:     getEnvDurationOrDefault("CACHE_TTL", "5m"),
		DisableCache: getEnvBoolOrDefault("DISABLE_CACHE", false),

		DisableRateLimit: getEnvBoolOrDefault("DISABLE_RATE_LIMIT", false),

		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// validate checks if the configuration is valid
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("server port cannot be empty")
	}
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("invalid server port: %s", c.ServerPort)
	}

	if c.DBPath == "" {
		return fmt.Errorf("database path cannot be empty")
	}

	if !c.DisableAdminAuth && c.AdminAPIKey == "" {
		return fmt.Errorf("admin API key is required unless admin auth is disabled")
	}

	if c.MaxTextBytes < 1 {
		return fmt.Errorf("max text bytes must be positive")
	}

	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive")
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	isValidLogLevel := false
	for _, level := range validLogLevels {
		if c.LogLevel == level {
			isValidLogLevel = true
			break
		}
	}
	if !isValidLogLevel {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// Address returns the full server address
func (c *Config) Address() string {
	return c.ServerHost + ":" + c.ServerPort
}

// GetDisableRateLimit returns the rate limit disable flag
func (c *Config) GetDisableRateLimit() bool {
	return c.DisableRateLimit
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDurationOrDefault returns environment variable as duration or default
func getEnvDurationOrDefault(key string, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}

	duration, err := time.ParseDuration(defaultValue)
	if err != nil {
		return 5 * time.Minute
	}
	return duration
}

// getEnvBoolOrDefault returns environment variable as boolean or default
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvIntOrDefault returns environment variable as integer or default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// loadEnvFile loads environment variables from a .env file if it exists
func loadEnvFile(filename string) {
	file, err := os.Open(filename)
	if err != nil {
		// .env file doesn't exist or can't be opened, which is fine
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if (strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"")) ||
			(strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'")) {
			value = value[1 : len(value)-1]
		}

		// Real environment always wins over the .env file
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}
