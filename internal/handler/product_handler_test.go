package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"boulangerie/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_List(t *testing.T) {
	h := NewProductHandler(newTestFacade(t), zerolog.Nop())

	tests := []struct {
		name           string
		method         string
		target         string
		expectedStatus int
		check          func(*testing.T, []model.Product)
	}{
		{
			name:           "Success with default limit",
			method:         http.MethodGet,
			target:         "/api/products",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, products []model.Product) {
				assert.NotEmpty(t, products)
			},
		},
		{
			name:           "Success with explicit limit",
			method:         http.MethodGet,
			target:         "/api/products?limit=2",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, products []model.Product) {
				assert.Len(t, products, 2)
			},
		},
		{
			name:           "Featured subset only",
			method:         http.MethodGet,
			target:         "/api/products?featured=true",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, products []model.Product) {
				require.NotEmpty(t, products)
				for _, p := range products {
					assert.True(t, p.IsFeatured)
				}
			},
		},
		{
			name:           "Invalid limit parameter",
			method:         http.MethodGet,
			target:         "/api/products?limit=abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPost,
			target:         "/api/products",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()

			h.List(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.check != nil {
				var products []model.Product
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
				tt.check(t, products)
			}
		})
	}
}

func TestProductHandler_GetByHandle(t *testing.T) {
	h := NewProductHandler(newTestFacade(t), zerolog.Nop())

	t.Run("Known handle localized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products/baguette-tradition?locale=en", nil)
		rec := httptest.NewRecorder()

		h.GetByHandle(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var product model.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
		assert.Equal(t, "Traditional baguette", product.Title)
	})

	t.Run("Unknown handle", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products/no-such-bread", nil)
		rec := httptest.NewRecorder()

		h.GetByHandle(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProductHandler_Storefront(t *testing.T) {
	h := NewProductHandler(newTestFacade(t), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/storefront/products?limit=3", nil)
	rec := httptest.NewRecorder()

	h.Storefront(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var products []model.StorefrontProduct
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 3)
	for _, p := range products {
		assert.NotEmpty(t, p.Price)
		assert.Contains(t, p.Price, "€")
	}
}
