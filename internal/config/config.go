package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	GoEnv string `env:"GO_ENV" default:"development"`

	// Service
	HTTPPort int `env:"HTTP_PORT" default:"8080"`

	// Database
	DatabaseURL string `env:"DATABASE_URL" default:"./data/artgrid.db"`

	// Authentication
	JWTSecret string        `env:"JWT_SECRET" required:"true"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" default:"168h"` // 7 days

	// Bootstrap admin account (seeded at startup if absent)
	AdminEmail    string `env:"ADMIN_EMAIL" default:"admin@my.uopeople.edu"`
	AdminPassword string `env:"ADMIN_PASSWORD" default:"admin123"`

	// Email (SMTP)
	SMTPHost     string `env:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort     int    `env:"SMTP_PORT" default:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	// Object storage (S3-compatible)
	S3Endpoint        string `env:"S3_ENDPOINT"`
	S3Region          string `env:"S3_REGION" default:"auto"`
	S3Bucket          string `env:"S3_BUCKET" default:"artgrid"`
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	S3AccessKeySecret string `env:"S3_ACCESS_KEY_SECRET"`
	S3PublicURL       string `env:"S3_PUBLIC_URL"`

	// Redis (admin stats cache)
	RedisURL      string        `env:"REDIS_URL"`
	StatsCacheTTL time.Duration `env:"STATS_CACHE_TTL" default:"60s"`

	// Uploads
	UploadMaxBytes int64 `env:"UPLOAD_MAX_BYTES" default:"10485760"` // 10 MB

	// Comment moderation word list (comma-separated substrings)
	ProfanityWords []string `env:"PROFANITY_WORDS" default:"spam,inappropriate"`

	// Development
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"json"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// A missing .env file is fine; system env vars still apply.
	if err := godotenv.Load(".env"); err != nil {
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	config := &Config{}

	if err := loadEnvString(&config.GoEnv, "GO_ENV", "development"); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.HTTPPort, "HTTP_PORT", 8080); err != nil {
		return nil, err
	}

	// Database
	if err := loadEnvString(&config.DatabaseURL, "DATABASE_URL", "./data/artgrid.db"); err != nil {
		return nil, err
	}

	// Authentication
	if err := loadEnvStringRequired(&config.JWTSecret, "JWT_SECRET"); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.JWTExpiry, "JWT_EXPIRY", 7*24*time.Hour); err != nil {
		return nil, err
	}

	// Bootstrap admin
	if err := loadEnvString(&config.AdminEmail, "ADMIN_EMAIL", "admin@my.uopeople.edu"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.AdminPassword, "ADMIN_PASSWORD", "admin123"); err != nil {
		return nil, err
	}

	// SMTP
	if err := loadEnvString(&config.SMTPHost, "SMTP_HOST", "smtp.gmail.com"); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.SMTPPort, "SMTP_PORT", 587); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.SMTPUsername, "SMTP_USERNAME", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.SMTPPassword, "SMTP_PASSWORD", ""); err != nil {
		return nil, err
	}

	// Object storage
	if err := loadEnvString(&config.S3Endpoint, "S3_ENDPOINT", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.S3Region, "S3_REGION", "auto"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.S3Bucket, "S3_BUCKET", "artgrid"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.S3AccessKeyID, "S3_ACCESS_KEY_ID", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.S3AccessKeySecret, "S3_ACCESS_KEY_SECRET", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.S3PublicURL, "S3_PUBLIC_URL", ""); err != nil {
		return nil, err
	}

	// Redis
	if err := loadEnvString(&config.RedisURL, "REDIS_URL", ""); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.StatsCacheTTL, "STATS_CACHE_TTL", 60*time.Second); err != nil {
		return nil, err
	}

	// Uploads
	if err := loadEnvInt64(&config.UploadMaxBytes, "UPLOAD_MAX_BYTES", 10*1024*1024); err != nil {
		return nil, err
	}

	// Comment moderation
	if err := loadEnvStringSlice(&config.ProfanityWords, "PROFANITY_WORDS", []string{"spam", "inappropriate"}); err != nil {
		return nil, err
	}

	// Development
	if err := loadEnvString(&config.LogLevel, "LOG_LEVEL", "info"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.LogFormat, "LOG_FORMAT", "json"); err != nil {
		return nil, err
	}

	return config, nil
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvStringRequired(target *string, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return fmt.Errorf("required environment variable %s is not set", key)
	}
	*target = value
	return nil
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvInt64(target *int64, key string, defaultValue int64) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvStringSlice(target *[]string, key string, defaultValue []string) error {
	if value := os.Getenv(key); value != "" {
		*target = strings.Split(value, ",")
		for i, v := range *target {
			(*target)[i] = strings.TrimSpace(v)
		}
	} else {
		*target = defaultValue
	}
	return nil
}

// Validate performs validation on the loaded configuration
func (c *Config) Validate() error {
	var errors []string

	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		errors = append(errors, "HTTP_PORT must be between 1 and 65535")
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: %s", strings.Join(validLogLevels, ", ")))
	}

	validLogFormats := []string{"text", "json"}
	if !contains(validLogFormats, c.LogFormat) {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: %s", strings.Join(validLogFormats, ", ")))
	}

	if len(c.JWTSecret) < 32 {
		errors = append(errors, "JWT_SECRET should be at least 32 characters long")
	}

	if c.UploadMaxBytes < 1 {
		errors = append(errors, "UPLOAD_MAX_BYTES must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// Helper function to check if slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
