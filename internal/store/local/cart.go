package local

import (
	"context"

	"boulangerie/internal/model"

	"github.com/google/uuid"
)

func newLineID() string {
	return "line-" + uuid.NewString()
}

// ensureCart materializes the single cart on first access. Reading never
// fails. Callers must hold s.mu.
func (s *Store) ensureCart() *model.Cart {
	if s.cart == nil {
		s.cart = &model.Cart{ID: localCartID}
	}
	return s.cart
}

// snapshot returns a defensive copy with the derived total recomputed.
func snapshot(cart *model.Cart) *model.Cart {
	out := *cart
	out.Lines = append([]model.CartLine(nil), cart.Lines...)
	out = out.Recalculate()
	return &out
}

// mergeLines folds inputs into lines: an existing line for the same product
// has its quantity incremented, otherwise a new line is appended with a fresh
// line id. Duplicate products within the inputs sum up the same way.
func mergeLines(lines []model.CartLine, inputs []model.CartLineInput) []model.CartLine {
	for _, in := range inputs {
		merged := false
		for i := range lines {
			if lines[i].ProductID == in.ProductID {
				lines[i].Quantity += in.Quantity
				merged = true
				break
			}
		}
		if !merged {
			lines = append(lines, model.CartLine{
				ID:        newLineID(),
				ProductID: in.ProductID,
				Quantity:  in.Quantity,
			})
		}
	}
	return lines
}

// CreateCart replaces the single cart. Initial lines are merged by product id
// so duplicate inputs sum their quantities.
func (s *Store) CreateCart(_ context.Context, initialLines []model.CartLineInput) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = &model.Cart{
		ID:    localCartID,
		Lines: mergeLines(nil, initialLines),
	}
	return snapshot(s.cart), nil
}

// GetCart ignores cartID: there is only one cart, auto-created empty on first
// read.
func (s *Store) GetCart(_ context.Context, _ string) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.ensureCart()), nil
}

func (s *Store) AddCartLines(_ context.Context, _ string, lines []model.CartLineInput) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.ensureCart()
	cart.Lines = mergeLines(cart.Lines, lines)
	return snapshot(cart), nil
}

// UpdateCartLineQuantity sets the quantity of the matching line. A quantity
// of zero or less removes the line; an unknown line id leaves the cart
// unchanged.
func (s *Store) UpdateCartLineQuantity(ctx context.Context, cartID, lineID string, quantity int) (*model.Cart, error) {
	if quantity <= 0 {
		return s.RemoveCartLine(ctx, cartID, lineID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.ensureCart()
	if line := cart.FindLine(lineID); line != nil {
		line.Quantity = quantity
	}
	return snapshot(cart), nil
}

// RemoveCartLine filters out the matching line; removing an absent line is a
// no-op.
func (s *Store) RemoveCartLine(_ context.Context, _ string, lineID string) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.ensureCart()
	kept := cart.Lines[:0]
	for _, line := range cart.Lines {
		if line.ID != lineID {
			kept = append(kept, line)
		}
	}
	cart.Lines = kept
	return snapshot(cart), nil
}

// ClearCart empties all lines; the cart id never changes.
func (s *Store) ClearCart(_ context.Context, _ string) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.ensureCart()
	cart.Lines = nil
	return snapshot(cart), nil
}
