package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		errorMsg    string
		check       func(*testing.T, *Config)
	}{
		{
			name:    "Success with defaults",
			envVars: map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
				assert.Equal(t, BackendLocal, cfg.Store.Backend)
				assert.Equal(t, "seed/products.json", cfg.Seed.File)
				assert.False(t, cfg.Seed.S3Enabled)
				assert.Equal(t, "*", cfg.Server.AllowedOrigin)
			},
		},
		{
			name: "Success with shopify backend",
			envVars: map[string]string{
				"STORE_BACKEND":                "shopify",
				"SHOPIFY_STORE_DOMAIN":         "demo.myshopify.com",
				"SHOPIFY_STOREFRONT_API_TOKEN": "token-123",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, BackendShopify, cfg.Store.Backend)
				assert.Equal(t, "demo.myshopify.com", cfg.Store.ShopifyDomain)
			},
		},
		{
			name: "Success with S3 seed source",
			envVars: map[string]string{
				"SEED_S3_ENABLED": "true",
				"SEED_S3_BUCKET":  "seed-bucket",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Seed.S3Enabled)
				assert.Equal(t, "seed-bucket", cfg.Seed.S3Bucket)
				assert.Equal(t, "us-east-1", cfg.Seed.S3Region)
			},
		},
		{
			name: "Owner email defaults to the sender",
			envVars: map[string]string{
				"MAIL_SENDER": "web@forn.cat",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "web@forn.cat", cfg.Mail.OwnerEmail)
			},
		},
		{
			name: "Error - invalid server port",
			envVars: map[string]string{
				"SERVER_PORT": "99999",
			},
			expectError: true,
			errorMsg:    "invalid server port",
		},
		{
			name: "Error - unknown backend",
			envVars: map[string]string{
				"STORE_BACKEND": "magento",
			},
			expectError: true,
			errorMsg:    "invalid store backend",
		},
		{
			name: "Error - S3 enabled without a bucket",
			envVars: map[string]string{
				"SEED_S3_ENABLED": "true",
			},
			expectError: true,
			errorMsg:    "seed S3 bucket is required",
		},
		{
			name: "Error - invalid log level",
			envVars: map[string]string{
				"LOG_LEVEL": "verbose",
			},
			expectError: true,
			errorMsg:    "invalid log level",
		},
		{
			name: "Error - invalid log format",
			envVars: map[string]string{
				"LOG_FORMAT": "xml",
			},
			expectError: true,
			errorMsg:    "invalid log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := Load()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.check != nil {
					tt.check(t, cfg)
				}
			}

			// Clean up
			os.Clearenv()
		})
	}
}
