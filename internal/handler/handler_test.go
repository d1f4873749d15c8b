package handler

import (
	"testing"

	"boulangerie/internal/seed"
	"boulangerie/internal/store"
	"boulangerie/internal/store/local"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// newTestFacade wires the store facade over a freshly seeded local backend.
func newTestFacade(t *testing.T) *store.Store {
	t.Helper()

	catalog, err := seed.Default()
	require.NoError(t, err)

	backend, err := local.New(catalog, zerolog.Nop())
	require.NoError(t, err)

	return store.New(backend, zerolog.Nop())
}
