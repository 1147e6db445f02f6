package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration
	MigrationsDir       string

	// Publishing backend configuration
	PublisherAPIURL     string
	PublisherAPIToken   string
	PublisherAPITimeout time.Duration
	LiveURLScheme       string

	// Push channel configuration
	WSProtocol string
	WSDomain   string
	WSPort     string
	WSPath     string

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		ReadTimeout:         getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:        getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:         getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnvInt("DB_PORT", 5432),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "superdesk_publisher"),
		DBSSLMode:           getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:          int32(getEnvInt("DB_MAX_CONNS", 10)),
		DBMinConns:          int32(getEnvInt("DB_MIN_CONNS", 2)),
		DBMaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		MigrationsDir:       getEnv("MIGRATIONS_DIR", "migrations"),
		PublisherAPIURL:     getEnv("PUBLISHER_API_URL", ""),
		PublisherAPIToken:   getEnv("PUBLISHER_API_TOKEN", ""),
		PublisherAPITimeout: getEnvDuration("PUBLISHER_API_TIMEOUT", 15*time.Second),
		LiveURLScheme:       getEnv("LIVE_URL_SCHEME", "http"),
		WSProtocol:          getEnv("WS_PROTOCOL", "wss"),
		WSDomain:            getEnv("WS_DOMAIN", ""),
		WSPort:              getEnv("WS_PORT", ""),
		WSPath:              getEnv("WS_PATH", ""),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ChannelEnabled reports whether a push domain is configured.
func (c *Config) ChannelEnabled() bool {
	return c.WSDomain != ""
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.PublisherAPIURL == "" {
		return fmt.Errorf("PUBLISHER_API_URL is required")
	}
	if u, err := url.Parse(c.PublisherAPIURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("PUBLISHER_API_URL must be an absolute URL")
	}
	if c.PublisherAPITimeout <= 0 {
		return fmt.Errorf("PUBLISHER_API_TIMEOUT must be positive")
	}
	if c.WSPort != "" {
		if _, err := strconv.Atoi(c.WSPort); err != nil {
			return fmt.Errorf("WS_PORT must be a number")
		}
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
