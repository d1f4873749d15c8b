package local

import (
	"context"

	"boulangerie/internal/model"
)

// localize returns the product at index i with the locale's title and
// description applied. Missing locales fall back to the default locale's
// localization, then to the raw base fields.
func (s *Store) localize(i int, locale model.Locale) model.Product {
	p := s.products[i]

	perHandle, ok := s.localizations[p.Handle]
	if !ok {
		return p
	}

	loc, ok := perHandle[locale]
	if !ok {
		loc, ok = perHandle[model.DefaultLocale]
	}
	if ok {
		p.Title = loc.Title
		p.Description = loc.Description
	}
	return p
}

// GetProductByHandle looks up one product by handle. An unknown handle yields
// (nil, nil).
func (s *Store) GetProductByHandle(_ context.Context, handle string, locale model.Locale) (*model.Product, error) {
	i, ok := s.byHandle[handle]
	if !ok {
		return nil, nil
	}
	p := s.localize(i, locale)
	return &p, nil
}

// GetProducts returns up to limit products in seed order.
func (s *Store) GetProducts(_ context.Context, limit int, locale model.Locale) ([]model.Product, error) {
	if limit > len(s.products) || limit <= 0 {
		limit = len(s.products)
	}
	out := make([]model.Product, 0, limit)
	for i := 0; i < limit; i++ {
		out = append(out, s.localize(i, locale))
	}
	return out, nil
}

// GetFeaturedProducts filters the full catalog; it is not an independent
// store.
func (s *Store) GetFeaturedProducts(ctx context.Context, locale model.Locale) ([]model.Product, error) {
	all, err := s.GetProducts(ctx, len(s.products), locale)
	if err != nil {
		return nil, err
	}
	featured := make([]model.Product, 0)
	for _, p := range all {
		if p.IsFeatured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// ListStorefrontProducts projects up to limit products into their
// presentation view.
func (s *Store) ListStorefrontProducts(ctx context.Context, locale model.Locale, limit int) ([]model.StorefrontProduct, error) {
	raw, err := s.GetProducts(ctx, limit, locale)
	if err != nil {
		return nil, err
	}
	out := make([]model.StorefrontProduct, 0, len(raw))
	for _, p := range raw {
		out = append(out, p.Storefront())
	}
	return out, nil
}
