package shopify

import (
	"context"

	"boulangerie/internal/model"

	"github.com/shopspring/decimal"
)

// productFields is the selection shared by the product queries.
const productFields = `
  id
  handle
  title
  description
  availableForSale
  featuredImage {
    url
    altText
    width
    height
  }
  images(first: 10) {
    edges {
      node {
        url
        altText
        width
        height
      }
    }
  }
  priceRange {
    minVariantPrice {
      amount
      currencyCode
    }
    maxVariantPrice {
      amount
      currencyCode
    }
  }
  collections(first: 5) {
    edges {
      node {
        handle
        title
      }
    }
  }
  metafields(identifiers: [
    { namespace: "custom", key: "category" },
    { namespace: "custom", key: "is_featured" }
  ]) {
    key
    value
  }`

const productByHandleQuery = `
query ProductByHandle($handle: String!, $language: LanguageCode) @inContext(language: $language) {
  product(handle: $handle) {` + productFields + `
  }
}`

const productsListQuery = `
query ProductsList($limit: Int!, $language: LanguageCode) @inContext(language: $language) {
  products(first: $limit, sortKey: TITLE) {
    edges {
      node {` + productFields + `
      }
    }
  }
}`

// featuredFetchLimit bounds the catalog page scanned for featured products.
const featuredFetchLimit = 50

type imageNode struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

type moneyNode struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type collectionNode struct {
	Handle string `json:"handle"`
	Title  string `json:"title"`
}

type metafieldNode struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type productNode struct {
	ID               string     `json:"id"`
	Handle           string     `json:"handle"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	AvailableForSale bool       `json:"availableForSale"`
	FeaturedImage    *imageNode `json:"featuredImage"`
	Images           struct {
		Edges []struct {
			Node imageNode `json:"node"`
		} `json:"edges"`
	} `json:"images"`
	PriceRange struct {
		MinVariantPrice moneyNode `json:"minVariantPrice"`
		MaxVariantPrice moneyNode `json:"maxVariantPrice"`
	} `json:"priceRange"`
	Collections struct {
		Edges []struct {
			Node collectionNode `json:"node"`
		} `json:"edges"`
	} `json:"collections"`
	// Unresolvable metafield identifiers come back as null entries.
	Metafields []*metafieldNode `json:"metafields"`
}

func (n *productNode) metafield(key string) (string, bool) {
	for _, m := range n.Metafields {
		if m != nil && m.Key == key {
			return m.Value, true
		}
	}
	return "", false
}

func parseAmount(m moneyNode) decimal.Decimal {
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

func mapImage(n imageNode) model.ProductImage {
	return model.ProductImage{
		URL:     n.URL,
		AltText: n.AltText,
		Width:   n.Width,
		Height:  n.Height,
	}
}

// mapProduct converts a storefront product node into the shared model.
// Category prefers the custom metafield over the first collection handle; a
// product is featured via metafield or membership in a "featured" collection.
func mapProduct(n *productNode) model.Product {
	p := model.Product{
		ID:               n.ID,
		Handle:           n.Handle,
		Title:            n.Title,
		Description:      n.Description,
		PriceMin:         parseAmount(n.PriceRange.MinVariantPrice),
		PriceMax:         parseAmount(n.PriceRange.MaxVariantPrice),
		AvailableForSale: n.AvailableForSale,
	}

	if n.FeaturedImage != nil {
		img := mapImage(*n.FeaturedImage)
		p.FeaturedImage = &img
	}
	for _, edge := range n.Images.Edges {
		p.Images = append(p.Images, mapImage(edge.Node))
	}

	if category, ok := n.metafield("category"); ok {
		p.Category = category
	} else if len(n.Collections.Edges) > 0 {
		p.Category = n.Collections.Edges[0].Node.Handle
	}

	if featured, ok := n.metafield("is_featured"); ok && featured == "true" {
		p.IsFeatured = true
	} else {
		for _, edge := range n.Collections.Edges {
			if edge.Node.Handle == "featured" {
				p.IsFeatured = true
				break
			}
		}
	}

	return p
}

// GetProductByHandle fetches one product; an unknown handle yields (nil, nil).
func (s *Store) GetProductByHandle(ctx context.Context, handle string, locale model.Locale) (*model.Product, error) {
	var data struct {
		Product *productNode `json:"product"`
	}
	err := s.query(ctx, productByHandleQuery, map[string]interface{}{
		"handle":   handle,
		"language": language(locale),
	}, &data)
	if err != nil {
		return nil, err
	}
	if data.Product == nil {
		return nil, nil
	}
	p := mapProduct(data.Product)
	return &p, nil
}

// GetProducts fetches up to limit products, title-sorted by the storefront.
func (s *Store) GetProducts(ctx context.Context, limit int, locale model.Locale) ([]model.Product, error) {
	var data struct {
		Products struct {
			Edges []struct {
				Node productNode `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	}
	err := s.query(ctx, productsListQuery, map[string]interface{}{
		"limit":    limit,
		"language": language(locale),
	}, &data)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(data.Products.Edges))
	for i := range data.Products.Edges {
		products = append(products, mapProduct(&data.Products.Edges[i].Node))
	}
	return products, nil
}

// GetFeaturedProducts filters a catalog page; the storefront has no featured
// query of its own.
func (s *Store) GetFeaturedProducts(ctx context.Context, locale model.Locale) ([]model.Product, error) {
	all, err := s.GetProducts(ctx, featuredFetchLimit, locale)
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

// ListStorefrontProducts projects up to limit products into the presentation
// view.
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
