package store

import (
	"context"
	"sync"

	"boulangerie/internal/model"

	"github.com/rs/zerolog"
)

// DefaultProductLimit is used when a caller does not specify a limit.
const DefaultProductLimit = 20

// Store is the single entry point the rest of the application calls. It hides
// which backend is active and, for backends that issue explicit cart handles,
// tracks the current cart id so callers never deal with one.
//
// The backend is chosen once at construction and immutable thereafter. Cart
// operations are serialized by a mutex so the cart-handle bookkeeping cannot
// interleave.
type Store struct {
	backend Backend
	logger  zerolog.Logger

	mu            sync.Mutex
	currentCartID string
}

// New creates a facade over the given backend.
func New(backend Backend, logger zerolog.Logger) *Store {
	return &Store{
		backend: backend,
		logger:  logger.With().Str("component", "store").Logger(),
	}
}

/* Products */

func (s *Store) GetProductByHandle(ctx context.Context, handle string, locale model.Locale) (*model.Product, error) {
	return s.backend.GetProductByHandle(ctx, handle, locale)
}

func (s *Store) GetProducts(ctx context.Context, limit int, locale model.Locale) ([]model.Product, error) {
	if limit <= 0 {
		limit = DefaultProductLimit
	}
	return s.backend.GetProducts(ctx, limit, locale)
}

func (s *Store) GetFeaturedProducts(ctx context.Context, locale model.Locale) ([]model.Product, error) {
	return s.backend.GetFeaturedProducts(ctx, locale)
}

func (s *Store) ListStorefrontProducts(ctx context.Context, locale model.Locale, limit int) ([]model.StorefrontProduct, error) {
	if limit <= 0 {
		limit = DefaultProductLimit
	}
	return s.backend.ListStorefrontProducts(ctx, locale, limit)
}

/* Cart */

// ensureCart resolves the active cart, creating one first when the backend
// needs an explicit handle and none has been issued yet. Callers must hold
// s.mu.
func (s *Store) ensureCart(ctx context.Context) (*model.Cart, error) {
	if !s.backend.RequiresCartID() {
		return s.backend.GetCart(ctx, "")
	}

	if s.currentCartID == "" {
		created, err := s.backend.CreateCart(ctx, nil)
		if err != nil {
			return nil, err
		}
		s.currentCartID = created.ID
		s.logger.Debug().Str("cart_id", created.ID).Msg("cart established")
		return created, nil
	}

	return s.backend.GetCart(ctx, s.currentCartID)
}

// activeCartID returns the id to pass to the backend for the given cart.
// Backends with a single implicit cart get an empty id.
func (s *Store) activeCartID(cart *model.Cart) string {
	if !s.backend.RequiresCartID() {
		return ""
	}
	return cart.ID
}

// CreateCart creates a fresh cart, replacing the facade's recorded cart id
// when the backend issues explicit handles.
func (s *Store) CreateCart(ctx context.Context, initialLines []model.CartLineInput) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.backend.CreateCart(ctx, initialLines)
	if err != nil {
		return nil, err
	}
	if s.backend.RequiresCartID() {
		s.currentCartID = cart.ID
	}
	return cart, nil
}

// GetCart returns the current cart, creating one on first access when the
// backend requires explicit cart handles.
func (s *Store) GetCart(ctx context.Context) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureCart(ctx)
}

func (s *Store) AddCartLines(ctx context.Context, lines []model.CartLineInput) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.ensureCart(ctx)
	if err != nil {
		return nil, err
	}
	return s.backend.AddCartLines(ctx, s.activeCartID(cart), lines)
}

func (s *Store) UpdateCartLineQuantity(ctx context.Context, lineID string, quantity int) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.ensureCart(ctx)
	if err != nil {
		return nil, err
	}
	return s.backend.UpdateCartLineQuantity(ctx, s.activeCartID(cart), lineID, quantity)
}

func (s *Store) RemoveCartLine(ctx context.Context, lineID string) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.ensureCart(ctx)
	if err != nil {
		return nil, err
	}
	return s.backend.RemoveCartLine(ctx, s.activeCartID(cart), lineID)
}

// ClearCart empties the current cart. Clearing normally keeps the cart id,
// but if the backend hands back a different id the recorded one is updated to
// match.
func (s *Store) ClearCart(ctx context.Context) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.ensureCart(ctx)
	if err != nil {
		return nil, err
	}

	cleared, err := s.backend.ClearCart(ctx, s.activeCartID(cart))
	if err != nil {
		return nil, err
	}
	if s.backend.RequiresCartID() && cleared.ID != s.currentCartID {
		s.logger.Debug().
			Str("old_cart_id", s.currentCartID).
			Str("new_cart_id", cleared.ID).
			Msg("cart id changed on clear")
		s.currentCartID = cleared.ID
	}
	return cleared, nil
}

// AddToCart is the one-product convenience used by product pages.
func (s *Store) AddToCart(ctx context.Context, productID string, quantity int) (*model.Cart, error) {
	return s.AddCartLines(ctx, []model.CartLineInput{{ProductID: productID, Quantity: quantity}})
}

/* Users */

func (s *Store) SignInWithEmail(ctx context.Context, email, password string) (*model.Session, error) {
	return s.backend.SignInWithEmail(ctx, email, password)
}

func (s *Store) GetCurrentUser(ctx context.Context, token string) (*model.User, error) {
	return s.backend.GetCurrentUser(ctx, token)
}

func (s *Store) SignOut(ctx context.Context, token string) error {
	return s.backend.SignOut(ctx, token)
}
