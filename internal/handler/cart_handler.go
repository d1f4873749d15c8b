package handler

import (
	"net/http"

	"boulangerie/internal/model"
	"boulangerie/internal/store"

	"github.com/rs/zerolog"
)

// CartHandler handles cart-related HTTP requests. Cart ids never appear in
// the API: the store facade tracks the active cart per backend.
type CartHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(s *store.Store, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		store:  s,
		logger: logger.With().Str("handler", "cart").Logger(),
	}
}

type cartLinesRequest struct {
	Lines []model.CartLineInput `json:"lines"`
}

type updateLineRequest struct {
	Quantity int `json:"quantity"`
}

func validLines(lines []model.CartLineInput) bool {
	for _, l := range lines {
		if l.ProductID == "" || l.Quantity <= 0 {
			return false
		}
	}
	return true
}

// Cart handles /api/cart: GET reads (materializing an empty cart if needed),
// POST creates a fresh cart, DELETE clears it.
func (h *CartHandler) Cart(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		cart, err := h.store.GetCart(r.Context())
		if err != nil {
			writeStoreError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, cart)

	case http.MethodPost:
		var req cartLinesRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
			return
		}
		if !validLines(req.Lines) {
			writeError(w, http.StatusBadRequest, "lines need a product id and a positive quantity", h.logger)
			return
		}
		cart, err := h.store.CreateCart(r.Context(), req.Lines)
		if err != nil {
			writeStoreError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusCreated, cart)

	case http.MethodDelete:
		cart, err := h.store.ClearCart(r.Context())
		if err != nil {
			writeStoreError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, cart)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// AddLines handles POST /api/cart/lines.
func (h *CartHandler) AddLines(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req cartLinesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}
	if len(req.Lines) == 0 {
		writeError(w, http.StatusBadRequest, "at least one line is required", h.logger)
		return
	}
	if !validLines(req.Lines) {
		writeError(w, http.StatusBadRequest, "lines need a product id and a positive quantity", h.logger)
		return
	}

	cart, err := h.store.AddCartLines(r.Context(), req.Lines)
	if err != nil {
		writeStoreError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// Line handles /api/cart/lines/{id}: PATCH sets the quantity (zero or less
// removes the line), DELETE removes it.
func (h *CartHandler) Line(w http.ResponseWriter, r *http.Request) {
	lineID := r.URL.Path[len("/api/cart/lines/"):]
	if lineID == "" {
		writeError(w, http.StatusBadRequest, "line id is required", h.logger)
		return
	}

	switch r.Method {
	case http.MethodPatch:
		var req updateLineRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
			return
		}
		cart, err := h.store.UpdateCartLineQuantity(r.Context(), lineID, req.Quantity)
		if err != nil {
			writeStoreError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, cart)

	case http.MethodDelete:
		cart, err := h.store.RemoveCartLine(r.Context(), lineID)
		if err != nil {
			writeStoreError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, cart)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}
