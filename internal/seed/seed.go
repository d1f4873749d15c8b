// Package seed loads the catalog seed document the local backend is built
// from: products with their per-locale localizations and the demo users.
package seed

import (
	"encoding/json"
	"fmt"

	"boulangerie/internal/model"
)

// Product is a seed catalog entry: the base product plus its localization
// table, keyed by locale.
type Product struct {
	model.Product
	Localizations map[model.Locale]model.Localization `json:"localizations,omitempty"`
}

// User is a seed user entry. The password travels in clear only inside the
// seed document; stores must persist a hash.
type User struct {
	model.User
	Password string `json:"password"`
}

// Catalog is the full seed document.
type Catalog struct {
	Products []Product `json:"products"`
	Users    []User    `json:"users,omitempty"`
}

// Parse decodes and sanity-checks a seed document.
func Parse(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse seed document: %w", err)
	}
	if len(catalog.Products) == 0 {
		return nil, fmt.Errorf("seed document contains no products")
	}
	return &catalog, nil
}
