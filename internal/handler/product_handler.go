package handler

import (
	"net/http"
	"strconv"

	"boulangerie/internal/store"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(s *store.Store, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		store:  s,
		logger: logger.With().Str("handler", "product").Logger(),
	}
}

func parseLimit(r *http.Request) (int, bool) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return store.DefaultProductLimit, true
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		return 0, false
	}
	return limit, true
}

// List handles GET /api/products requests. With featured=true only the
// featured subset is returned.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	locale := localeFrom(r)

	if r.URL.Query().Get("featured") == "true" {
		products, err := h.store.GetFeaturedProducts(r.Context(), locale)
		if err != nil {
			writeStoreError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, products)
		return
	}

	limit, ok := parseLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid limit parameter", h.logger)
		return
	}

	products, err := h.store.GetProducts(r.Context(), limit, locale)
	if err != nil {
		writeStoreError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetByHandle handles GET /api/products/{handle} requests.
func (h *ProductHandler) GetByHandle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	handle := r.URL.Path[len("/api/products/"):]
	if handle == "" {
		writeError(w, http.StatusBadRequest, "product handle is required", h.logger)
		return
	}

	product, err := h.store.GetProductByHandle(r.Context(), handle, localeFrom(r))
	if err != nil {
		writeStoreError(w, err, h.logger)
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Storefront handles GET /api/storefront/products requests: the simplified
// presentation view for listings.
func (h *ProductHandler) Storefront(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	limit, ok := parseLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid limit parameter", h.logger)
		return
	}

	products, err := h.store.ListStorefrontProducts(r.Context(), localeFrom(r), limit)
	if err != nil {
		writeStoreError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, products)
}
