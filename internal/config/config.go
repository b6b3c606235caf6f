package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`
	FrontendURL string `json:"frontend_url"`
	Version     string `json:"version"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBName     string `json:"db_name"`
	DBSSLMode  string `json:"db_ssl_mode"`
	SQLitePath string `json:"sqlite_path"`

	// Session / cache store configuration
	RedisURL      string `json:"redis_url"`
	SessionSecret string `json:"session_secret"`

	// Rate limiting configuration
	RateLimitMax           int `json:"rate_limit_max"`
	RateLimitWindowMinutes int `json:"rate_limit_window_minutes"`

	// Logging configuration
	LogLevel string `json:"log_level"`
}

// IsProduction reports whether the app runs in production mode. The mode
// drives CORS defaults, cookie flags and logging verbosity.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Environment: %s, FrontendURL: %s, DBDriver: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], RedisURL: %s, SessionSecret: [REDACTED], RateLimitMax: %d, RateLimitWindowMinutes: %d, LogLevel: %s}",
		c.Port, c.Environment, c.FrontendURL, c.DBDriver, c.DBHost, c.DBName, c.DBUser, maskRedisURL(c.RedisURL), c.RateLimitMax, c.RateLimitWindowMinutes, c.LogLevel)
}

// maskRedisURL masks any password embedded in the redis URL
func maskRedisURL(redisURL string) string {
	if redisURL == "" {
		return ""
	}

	parsed, err := url.Parse(redisURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		// Replace password with [REDACTED]
		parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	}

	return parsed.String()
}

// LoadConfig reads the configuration from environment variables and returns a Config struct.
// All values have safe defaults except the session secret in production.
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("PORT", "4000"))
	if err != nil {
		return nil, err
	}

	environment := GetEnvWithDefault("APP_ENV", "development")
	sessionSecret := GetEnvWithDefault("SESSION_SECRET", "default-session-secret")
	if environment == "production" && sessionSecret == "default-session-secret" {
		return nil, errors.New("SESSION_SECRET environment variable is required in production")
	}

	config := &Config{
		Port:                   port,
		Environment:            environment,
		FrontendURL:            GetEnvWithDefault("FRONTEND_URL", "http://localhost:3000"),
		Version:                GetEnvWithDefault("APP_VERSION", "1.0.0"),
		DBDriver:               GetEnvWithDefault("DB_DRIVER", "sqlite"),
		DBHost:                 GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:                 GetEnvWithDefault("DB_PORT", "5432"),
		DBUser:                 GetEnvWithDefault("DB_USER", "spiceroutes"),
		DBPassword:             GetEnvWithDefault("DB_PASSWORD", "spiceroutes"),
		DBName:                 GetEnvWithDefault("DB_NAME", "spiceroutes"),
		DBSSLMode:              GetEnvWithDefault("DB_SSL_MODE", "disable"),
		SQLitePath:             GetEnvWithDefault("SQLITE_PATH", "spiceroutes.sqlite"),
		RedisURL:               GetEnvWithDefault("REDIS_URL", "redis://localhost:6379"),
		SessionSecret:          sessionSecret,
		RateLimitMax:           GetEnvAsType("RATE_LIMIT_MAX", 100),
		RateLimitWindowMinutes: GetEnvAsType("RATE_LIMIT_WINDOW_MINUTES", 15),
		LogLevel:               GetEnvWithDefault("LOG_LEVEL", "info"),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Warnf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
