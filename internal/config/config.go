package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Catalog CatalogConfig
	Storage StorageConfig
	Shop    ShopConfig
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

// CatalogConfig describes where the catalogue dataset is loaded from.
// When the source cannot be loaded the store falls back to the built-in
// dataset, so a bad path degrades the site rather than breaking it.
type CatalogConfig struct {
	Source string // "file" or "http"
	Path   string // dataset file path when Source is "file"
	URL    string // dataset URL when Source is "http"
}

// StorageConfig selects the backend for the cart and order slots.
type StorageConfig struct {
	Backend   string // "memory", "file" or "redis"
	Dir       string // slot directory when Backend is "file"
	RedisAddr string // when Backend is "redis"
}

// ShopConfig holds the shop's business constants.
type ShopConfig struct {
	FreeShippingThreshold float64
	FlatShippingFee       float64
	CurrencySymbol        string
	BasePath              string // URL prefix for links in rendered fragments
}

// Load loads configuration from environment variables. A .env file in
// the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

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
			Source: getEnv("CATALOG_SOURCE", "file"),
			Path:   getEnv("CATALOG_PATH", "data/catalog.json"),
			URL:    getEnv("CATALOG_URL", ""),
		},
		Storage: StorageConfig{
			Backend:   getEnv("STORAGE_BACKEND", "file"),
			Dir:       getEnv("STORAGE_DIR", "data/state"),
			RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Shop: ShopConfig{
			FreeShippingThreshold: getEnvAsFloat("FREE_SHIPPING_THRESHOLD", 75.00),
			FlatShippingFee:       getEnvAsFloat("FLAT_SHIPPING_FEE", 8.95),
			CurrencySymbol:        getEnv("CURRENCY_SYMBOL", "$"),
			BasePath:              getEnv("SHOP_BASE_PATH", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Catalog.Source {
	case "file":
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog path is required when catalog source is file")
		}
	case "http":
		if c.Catalog.URL == "" {
			return fmt.Errorf("catalog URL is required when catalog source is http")
		}
	default:
		return fmt.Errorf("invalid catalog source: %s (must be file or http)", c.Catalog.Source)
	}

	switch c.Storage.Backend {
	case "memory":
	case "file":
		if c.Storage.Dir == "" {
			return fmt.Errorf("storage dir is required when storage backend is file")
		}
	case "redis":
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("redis address is required when storage backend is redis")
		}
	default:
		return fmt.Errorf("invalid storage backend: %s (must be memory, file or redis)", c.Storage.Backend)
	}

	if c.Shop.FreeShippingThreshold < 0 {
		return fmt.Errorf("free shipping threshold cannot be negative")
	}

	if c.Shop.FlatShippingFee < 0 {
		return fmt.Errorf("flat shipping fee cannot be negative")
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

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
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

// getEnvAsFloat retrieves an environment variable as a float or returns a default value.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
