// Package shopify implements the store backend against the Shopify
// Storefront GraphQL API, mapping its schema into the shared data model.
//
// Every call is a fresh round trip; there is no caching layer. Missing
// credentials do not fail construction, only the operations that need them.
package shopify

import (
	"fmt"
	"net/http"
	"time"

	"boulangerie/internal/model"

	"github.com/rs/zerolog"
)

// DefaultAPIVersion is used when the configuration does not pin one.
const DefaultAPIVersion = "2024-01"

// requestTimeout bounds every storefront round trip. Timeouts classify as
// transient, same as connection failures.
const requestTimeout = 10 * time.Second

// Config holds the storefront endpoint settings.
type Config struct {
	Domain      string
	AccessToken string
	APIVersion  string
}

// Store is the remote backend.
type Store struct {
	cfg      Config
	endpoint string
	client   *http.Client
	logger   zerolog.Logger
}

// New creates a shopify store. It never fails on missing credentials; those
// surface as configuration errors when an operation is attempted.
func New(cfg Config, logger zerolog.Logger) *Store {
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}

	logger = logger.With().Str("backend", "shopify").Logger()
	if cfg.Domain == "" {
		logger.Warn().Msg("shopify store domain is not configured")
	}
	if cfg.AccessToken == "" {
		logger.Warn().Msg("shopify storefront access token is not configured")
	}

	return &Store{
		cfg:      cfg,
		endpoint: fmt.Sprintf("https://%s/api/%s/graphql.json", cfg.Domain, cfg.APIVersion),
		client:   &http.Client{Timeout: requestTimeout},
		logger:   logger,
	}
}

// RequiresCartID reports that this backend issues explicit cart handles.
func (s *Store) RequiresCartID() bool {
	return true
}

// configured checks that the credentials needed for a call are present.
func (s *Store) configured() error {
	if s.cfg.Domain == "" {
		return model.NewConfig("shopify store domain is not set")
	}
	if s.cfg.AccessToken == "" {
		return model.NewConfig("shopify storefront access token is not set")
	}
	return nil
}

// language maps an internal locale to a Storefront LanguageCode variable.
func language(locale model.Locale) string {
	switch locale {
	case model.LocaleCA:
		return "CA"
	case model.LocaleES:
		return "ES"
	default:
		return "EN"
	}
}
