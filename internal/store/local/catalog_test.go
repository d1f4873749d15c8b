package local

import (
	"context"
	"testing"

	"boulangerie/internal/model"
	"boulangerie/internal/seed"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	catalog, err := seed.Default()
	require.NoError(t, err)

	s, err := New(catalog, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func TestNew_RejectsBadSeed(t *testing.T) {
	price := decimal.RequireFromString("1.00")

	tests := []struct {
		name     string
		catalog  *seed.Catalog
		errorMsg string
	}{
		{
			name: "Missing handle",
			catalog: &seed.Catalog{
				Products: []seed.Product{
					{Product: model.Product{ID: "p-1", PriceMin: price, PriceMax: price}},
				},
			},
			errorMsg: "has no handle",
		},
		{
			name: "Duplicate handle",
			catalog: &seed.Catalog{
				Products: []seed.Product{
					{Product: model.Product{ID: "p-1", Handle: "baguette", PriceMin: price, PriceMax: price}},
					{Product: model.Product{ID: "p-2", Handle: "baguette", PriceMin: price, PriceMax: price}},
				},
			},
			errorMsg: "duplicate product handle",
		},
		{
			name: "Price minimum above maximum",
			catalog: &seed.Catalog{
				Products: []seed.Product{
					{Product: model.Product{
						ID:       "p-1",
						Handle:   "baguette",
						PriceMin: decimal.RequireFromString("2.00"),
						PriceMax: price,
					}},
				},
			},
			errorMsg: "priceMin above priceMax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.catalog, zerolog.Nop())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
			assert.Nil(t, s)
		})
	}
}

func TestGetProductByHandle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("Known handle with localization", func(t *testing.T) {
		p, err := s.GetProductByHandle(ctx, "baguette-tradition", model.LocaleEN)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Traditional baguette", p.Title)
		assert.True(t, p.PriceMin.Equal(decimal.RequireFromString("1.20")))
	})

	t.Run("Unknown locale falls back to default", func(t *testing.T) {
		def, err := s.GetProductByHandle(ctx, "baguette-tradition", model.DefaultLocale)
		require.NoError(t, err)
		require.NotNil(t, def)

		p, err := s.GetProductByHandle(ctx, "baguette-tradition", model.Locale("fr"))
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, def.Title, p.Title)
		assert.Equal(t, def.Description, p.Description)
	})

	t.Run("Unknown handle yields nil without error", func(t *testing.T) {
		p, err := s.GetProductByHandle(ctx, "no-such-product", model.DefaultLocale)
		require.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestGetProducts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	all, err := s.GetProducts(ctx, 0, model.DefaultLocale)
	require.NoError(t, err)
	require.NotEmpty(t, all)

	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "Limit within catalog", limit: 3, expected: 3},
		{name: "Limit above catalog size returns all", limit: len(all) + 10, expected: len(all)},
		{name: "Zero limit returns all", limit: 0, expected: len(all)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := s.GetProducts(ctx, tt.limit, model.DefaultLocale)
			require.NoError(t, err)
			assert.Len(t, products, tt.expected)
		})
	}
}

func TestGetFeaturedProducts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	all, err := s.GetProducts(ctx, 0, model.DefaultLocale)
	require.NoError(t, err)

	byHandle := make(map[string]model.Product, len(all))
	for _, p := range all {
		byHandle[p.Handle] = p
	}

	featured, err := s.GetFeaturedProducts(ctx, model.DefaultLocale)
	require.NoError(t, err)
	require.NotEmpty(t, featured)

	// Featured is a subset of the full catalog, never an independent list.
	for _, p := range featured {
		assert.True(t, p.IsFeatured, "product %s is not marked featured", p.Handle)
		full, ok := byHandle[p.Handle]
		require.True(t, ok, "featured product %s missing from catalog", p.Handle)
		assert.Equal(t, full, p)
	}
}

func TestListStorefrontProducts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	products, err := s.ListStorefrontProducts(ctx, model.LocaleEN, 2)
	require.NoError(t, err)
	require.Len(t, products, 2)

	first := products[0]
	assert.Equal(t, "baguette-tradition", first.Handle)
	assert.Equal(t, "Traditional baguette", first.Title)
	assert.Equal(t, "1.20 €", first.Price)
	assert.NotEmpty(t, first.ImageURL)
	assert.Empty(t, first.Badge)
}

func TestStorefrontBadge(t *testing.T) {
	price := decimal.RequireFromString("2.50")
	catalog := &seed.Catalog{
		Products: []seed.Product{
			{Product: model.Product{
				ID:               "p-1",
				Handle:           "sold-out",
				Title:            "Sold out",
				PriceMin:         price,
				PriceMax:         price,
				AvailableForSale: false,
			}},
		},
	}

	s, err := New(catalog, zerolog.Nop())
	require.NoError(t, err)

	products, err := s.ListStorefrontProducts(context.Background(), model.DefaultLocale, 1)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, model.OutOfStockBadge, products[0].Badge)
}
