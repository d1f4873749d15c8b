package config

import (
	"fmt"
	"os"
	"strconv"
)

// Backend selection values for the store facade.
const (
	BackendLocal   = "local"
	BackendShopify = "shopify"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Seed   SeedConfig
	Mail   MailConfig
	Logger LoggerConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host          string
	Port          int
	AllowedOrigin string
}

// StoreConfig selects the store backend and carries the remote credentials.
// Shopify settings are deliberately not validated at load time: their absence
// only fails the remote call that needs them.
type StoreConfig struct {
	Backend           string
	ShopifyDomain     string
	ShopifyToken      string
	ShopifyAPIVersion string
}

// SeedConfig locates the catalog seed document for the local backend.
type SeedConfig struct {
	File      string
	S3Enabled bool
	S3Bucket  string
	S3Region  string
	S3Prefix  string
}

// MailConfig holds the contact-mailer settings. Like the Shopify credentials,
// absence surfaces only when a send is attempted.
type MailConfig struct {
	SendGridKey string
	Sender      string
	OwnerEmail  string
	ShopName    string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:          getEnv("SERVER_HOST", "0.0.0.0"),
			Port:          getEnvAsInt("SERVER_PORT", 8080),
			AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		},
		Store: StoreConfig{
			Backend:           getEnv("STORE_BACKEND", BackendLocal),
			ShopifyDomain:     getEnv("SHOPIFY_STORE_DOMAIN", ""),
			ShopifyToken:      getEnv("SHOPIFY_STOREFRONT_API_TOKEN", ""),
			ShopifyAPIVersion: getEnv("SHOPIFY_STOREFRONT_API_VERSION", ""),
		},
		Seed: SeedConfig{
			File:      getEnv("SEED_FILE", "seed/products.json"),
			S3Enabled: getEnvAsBool("SEED_S3_ENABLED", false),
			S3Bucket:  getEnv("SEED_S3_BUCKET", ""),
			S3Region:  getEnv("SEED_S3_REGION", "us-east-1"),
			S3Prefix:  getEnv("SEED_S3_PREFIX", "seed/"),
		},
		Mail: MailConfig{
			SendGridKey: getEnv("SENDGRID_API_KEY", ""),
			Sender:      getEnv("MAIL_SENDER", ""),
			OwnerEmail:  getEnv("CONTACT_OWNER_EMAIL", ""),
			ShopName:    getEnv("SHOP_NAME", "Boulangerie Demo"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if cfg.Mail.OwnerEmail == "" {
		cfg.Mail.OwnerEmail = cfg.Mail.Sender
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

	if c.Store.Backend != BackendLocal && c.Store.Backend != BackendShopify {
		return fmt.Errorf("invalid store backend: %s (must be %s or %s)", c.Store.Backend, BackendLocal, BackendShopify)
	}

	if c.Seed.S3Enabled {
		if c.Seed.S3Bucket == "" {
			return fmt.Errorf("seed S3 bucket is required when seed S3 is enabled")
		}
		if c.Seed.S3Region == "" {
			return fmt.Errorf("seed S3 region is required when seed S3 is enabled")
		}
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

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
