package model

import "github.com/shopspring/decimal"

// ProductImage is a single product image reference.
type ProductImage struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

// Product is the low-level product model shared by all store backends.
// Handle is the stable, URL-safe, globally unique lookup key; ID is the
// backend's opaque identifier. Products are read-only at runtime.
type Product struct {
	ID               string          `json:"id"`
	Handle           string          `json:"handle"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	FeaturedImage    *ProductImage   `json:"featuredImage"`
	Images           []ProductImage  `json:"images"`
	PriceMin         decimal.Decimal `json:"priceMin"`
	PriceMax         decimal.Decimal `json:"priceMax"`
	AvailableForSale bool            `json:"availableForSale"`
	Category         string          `json:"category"`
	IsFeatured       bool            `json:"isFeatured"`
}

// Localization carries the locale-dependent fields of a product.
type Localization struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StorefrontProduct is the simplified presentation view used by listings and
// cards. Price is pre-formatted; Badge is set when the product cannot be sold.
type StorefrontProduct struct {
	ID          string `json:"id"`
	Handle      string `json:"handle"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Badge       string `json:"badge,omitempty"`
	IsFeatured  bool   `json:"isFeatured"`
	Category    string `json:"category,omitempty"`
}

// OutOfStockBadge is the badge text applied to unavailable products.
const OutOfStockBadge = "Out of stock"

// Storefront projects a product into its presentation view.
func (p Product) Storefront() StorefrontProduct {
	sp := StorefrontProduct{
		ID:          p.ID,
		Handle:      p.Handle,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.PriceMin.StringFixed(2) + " €",
		IsFeatured:  p.IsFeatured,
		Category:    p.Category,
	}
	if p.FeaturedImage != nil {
		sp.ImageURL = p.FeaturedImage.URL
	}
	if !p.AvailableForSale {
		sp.Badge = OutOfStockBadge
	}
	return sp
}
