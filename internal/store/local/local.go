// Package local implements the store backend against in-memory state seeded
// at construction. All mutable state (the single cart, the session table) is
// owned by the Store instance and guarded by its mutex, so independent
// instances never share anything.
package local

import (
	"fmt"
	"sync"
	"time"

	"boulangerie/internal/model"
	"boulangerie/internal/seed"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// localCartID is the fixed id of the single implicit cart.
const localCartID = "local-cart"

// sessionTTL bounds how long an issued token stays valid.
const sessionTTL = 7 * 24 * time.Hour

type userRecord struct {
	user         model.User
	passwordHash []byte
}

type sessionRecord struct {
	userID    string
	expiresAt time.Time
}

// Store is the in-memory backend.
type Store struct {
	logger zerolog.Logger

	// Catalog data is written once at construction and read-only afterwards.
	products      []model.Product
	byHandle      map[string]int
	localizations map[string]map[model.Locale]model.Localization

	mu       sync.Mutex
	cart     *model.Cart
	users    []userRecord
	sessions map[string]sessionRecord

	now func() time.Time
}

// New builds a local store from a seed catalog. Seed passwords are stored as
// bcrypt hashes only.
func New(catalog *seed.Catalog, logger zerolog.Logger) (*Store, error) {
	s := &Store{
		logger:        logger.With().Str("backend", "local").Logger(),
		byHandle:      make(map[string]int, len(catalog.Products)),
		localizations: make(map[string]map[model.Locale]model.Localization, len(catalog.Products)),
		sessions:      make(map[string]sessionRecord),
		now:           time.Now,
	}

	for i, sp := range catalog.Products {
		p := sp.Product
		if p.Handle == "" {
			return nil, fmt.Errorf("seed product %q has no handle", p.ID)
		}
		if _, dup := s.byHandle[p.Handle]; dup {
			return nil, fmt.Errorf("duplicate product handle %q in seed", p.Handle)
		}
		if p.PriceMin.GreaterThan(p.PriceMax) {
			return nil, fmt.Errorf("product %q has priceMin above priceMax", p.Handle)
		}
		s.byHandle[p.Handle] = i
		s.products = append(s.products, p)
		if len(sp.Localizations) > 0 {
			s.localizations[p.Handle] = sp.Localizations
		}
	}

	for _, su := range catalog.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password for %s: %w", su.Email, err)
		}
		s.users = append(s.users, userRecord{user: su.User, passwordHash: hash})
	}

	s.logger.Info().
		Int("products", len(s.products)).
		Int("users", len(s.users)).
		Msg("local store seeded")

	return s, nil
}

// RequiresCartID reports that this backend keeps a single implicit cart.
func (s *Store) RequiresCartID() bool {
	return false
}
