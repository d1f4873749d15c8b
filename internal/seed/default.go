package seed

import (
	_ "embed"
	"fmt"
)

// defaultSeed is the built-in bakery catalog, used when no external seed
// source can be loaded.
//
//go:embed products.json
var defaultSeed []byte

// Default returns the embedded seed catalog.
func Default() (*Catalog, error) {
	catalog, err := Parse(defaultSeed)
	if err != nil {
		return nil, fmt.Errorf("embedded seed catalog is invalid: %w", err)
	}
	return catalog, nil
}
