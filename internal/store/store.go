package store

import (
	"context"

	"boulangerie/internal/model"
)

// Backend is the contract every store backend implements: product catalog,
// cart ledger and user sessions against one storage technology.
//
// Read lookups that find nothing return (nil, nil); errors are reserved for
// the failure kinds in model.StoreError.
type Backend interface {
	// GetProductByHandle resolves a product by its handle, localized for the
	// given locale with fallback to the default locale and then to the raw
	// base fields.
	GetProductByHandle(ctx context.Context, handle string, locale model.Locale) (*model.Product, error)

	// GetProducts returns up to limit products in the backend's natural
	// order, localized.
	GetProducts(ctx context.Context, limit int, locale model.Locale) ([]model.Product, error)

	// GetFeaturedProducts returns the featured subset of the catalog.
	GetFeaturedProducts(ctx context.Context, locale model.Locale) ([]model.Product, error)

	// ListStorefrontProducts returns the presentation projection of up to
	// limit products.
	ListStorefrontProducts(ctx context.Context, locale model.Locale, limit int) ([]model.StorefrontProduct, error)

	// CreateCart creates a cart, optionally pre-filled. Initial lines
	// referencing the same product are merged by summing quantities.
	CreateCart(ctx context.Context, initialLines []model.CartLineInput) (*model.Cart, error)

	// GetCart reads a cart. Backends with a single implicit cart ignore
	// cartID and materialize an empty cart on first access; backends that
	// issue explicit handles require it.
	GetCart(ctx context.Context, cartID string) (*model.Cart, error)

	// AddCartLines merges lines into the cart: an existing line for the same
	// product has its quantity incremented, otherwise a new line is appended
	// with a fresh line id.
	AddCartLines(ctx context.Context, cartID string, lines []model.CartLineInput) (*model.Cart, error)

	// UpdateCartLineQuantity sets (not increments) a line's quantity. A
	// quantity of zero or less removes the line. An unknown line id leaves
	// the cart unchanged.
	UpdateCartLineQuantity(ctx context.Context, cartID, lineID string, quantity int) (*model.Cart, error)

	// RemoveCartLine removes a line; removing an absent line is a no-op.
	RemoveCartLine(ctx context.Context, cartID, lineID string) (*model.Cart, error)

	// ClearCart removes every line. The cart id is normally preserved.
	ClearCart(ctx context.Context, cartID string) (*model.Cart, error)

	// SignInWithEmail checks credentials and issues a session. Unknown email
	// and wrong password both fail with model.ErrInvalidCredentials.
	SignInWithEmail(ctx context.Context, email, password string) (*model.Session, error)

	// GetCurrentUser resolves a bearer token to its user. An absent, unknown
	// or expired token yields (nil, nil): "no session" is a normal state.
	GetCurrentUser(ctx context.Context, token string) (*model.User, error)

	// SignOut revokes a token. Revoking an already-invalid token is not an
	// error.
	SignOut(ctx context.Context, token string) error

	// RequiresCartID reports whether this backend issues explicit cart
	// handles that callers must pass back on every cart operation.
	RequiresCartID() bool
}
