package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Catalogue sources accepted by CATALOG_SOURCE.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceS3       = "s3"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	SQLite   SQLiteConfig
	S3       S3Config
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// CatalogConfig selects where the food catalogue is loaded from at startup.
type CatalogConfig struct {
	Source string
	Path   string // file path or S3 key (without prefix)
}

// DatabaseConfig holds PostgreSQL configuration for the postgres catalogue source.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// SQLiteConfig holds configuration for the sqlite catalogue source.
type SQLiteConfig struct {
	Path string
}

// S3Config holds AWS S3 configuration for the s3 catalogue source.
type S3Config struct {
	Bucket string
	Region string
	Prefix string // Path prefix within bucket (e.g., "catalog/")
}

// GeocoderConfig holds reverse-geocoding client configuration. It is used by
// the CLI only; the API server never geocodes, so it is not part of Config.
type GeocoderConfig struct {
	BaseURL        string
	UserAgent      string
	TimeoutSeconds int
}

// LoadDotEnv reads a .env file from the working directory into the process
// environment. A missing file is not an error; variables already set win.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read .env file: %w", err)
	}
	return nil
}

// Load loads configuration from environment variables after LoadDotEnv.
func Load() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Catalog: CatalogConfig{
			Source: getEnv("CATALOG_SOURCE", SourceEmbedded),
			Path:   getEnv("CATALOG_PATH", "data/foods.json"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "fitbuddy"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 10),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 1),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		SQLite: SQLiteConfig{
			Path: getEnv("SQLITE_PATH", "fitbuddy.db"),
		},
		S3: S3Config{
			Bucket: getEnv("S3_BUCKET", ""),
			Region: getEnv("S3_REGION", "us-east-1"),
			Prefix: getEnv("S3_PREFIX", "catalog/"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadGeocoder reads the reverse-geocoding settings from the environment.
// Call LoadDotEnv first if a .env file should be honoured.
func LoadGeocoder() GeocoderConfig {
	return GeocoderConfig{
		BaseURL:        getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		UserAgent:      getEnv("GEOCODER_USER_AGENT", "fitbuddy/1.0"),
		TimeoutSeconds: getEnvAsInt("GEOCODER_TIMEOUT_SECONDS", 10),
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	switch c.Catalog.Source {
	case SourceEmbedded:
		return nil
	case SourceFile:
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog path is required for the file source")
		}
	case SourceS3:
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog path is required for the s3 source")
		}
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required for the s3 source")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required for the s3 source")
		}
	case SourcePostgres:
		return c.Database.Validate()
	case SourceSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("sqlite path is required for the sqlite source")
		}
	default:
		return fmt.Errorf("invalid catalog source: %s (must be embedded, file, s3, postgres, or sqlite)", c.Catalog.Source)
	}

	return nil
}

// Validate validates the PostgreSQL settings.
func (c *DatabaseConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}

	if c.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.MinConnections > c.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate validates the geocoder settings.
func (c *GeocoderConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("geocoder base URL is required")
	}

	if c.TimeoutSeconds < 1 {
		return fmt.Errorf("geocoder timeout must be at least 1 second")
	}

	return nil
}

// Timeout returns the geocoder request timeout.
func (c *GeocoderConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
