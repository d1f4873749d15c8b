package shopify

import (
	"context"

	"boulangerie/internal/model"
)

// Storefront carts work with merchandise (variant) ids; the shared model's
// product id carries that value for this backend.

const cartFields = `
  id
  lines(first: 50) {
    edges {
      node {
        id
        quantity
        merchandise {
          ... on ProductVariant {
            id
          }
        }
      }
    }
  }`

const cartCreateMutation = `
mutation CreateCart($lines: [CartLineInput!]) {
  cartCreate(input: { lines: $lines }) {
    cart {` + cartFields + `
    }
    userErrors {
      field
      message
    }
  }
}`

const cartQuery = `
query GetCart($id: ID!) {
  cart(id: $id) {` + cartFields + `
  }
}`

const cartLinesAddMutation = `
mutation AddCartLines($cartId: ID!, $lines: [CartLineInput!]!) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart {` + cartFields + `
    }
    userErrors {
      field
      message
    }
  }
}`

const cartLinesUpdateMutation = `
mutation UpdateCartLines($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
  cartLinesUpdate(cartId: $cartId, lines: $lines) {
    cart {` + cartFields + `
    }
    userErrors {
      field
      message
    }
  }
}`

const cartLinesRemoveMutation = `
mutation RemoveCartLines($cartId: ID!, $lineIds: [ID!]!) {
  cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
    cart {` + cartFields + `
    }
    userErrors {
      field
      message
    }
  }
}`

type cartNode struct {
	ID    string `json:"id"`
	Lines struct {
		Edges []struct {
			Node struct {
				ID          string `json:"id"`
				Quantity    int    `json:"quantity"`
				Merchandise struct {
					ID string `json:"id"`
				} `json:"merchandise"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"lines"`
}

// cartPayload is the shared shape of every cart mutation result.
type cartPayload struct {
	Cart       *cartNode   `json:"cart"`
	UserErrors []userError `json:"userErrors"`
}

func mapCart(n *cartNode) *model.Cart {
	cart := model.Cart{ID: n.ID}
	for _, edge := range n.Lines.Edges {
		cart.Lines = append(cart.Lines, model.CartLine{
			ID:        edge.Node.ID,
			ProductID: edge.Node.Merchandise.ID,
			Quantity:  edge.Node.Quantity,
		})
	}
	cart = cart.Recalculate()
	return &cart
}

// resolvePayload applies the common mutation result checks: userErrors abort
// the whole batch, and a null cart means the storefront misbehaved.
func resolvePayload(operation string, p cartPayload) (*model.Cart, error) {
	if err := rejectUserErrors(operation, p.UserErrors); err != nil {
		return nil, err
	}
	if p.Cart == nil {
		return nil, model.NewTransient(operation+" returned no cart", nil)
	}
	return mapCart(p.Cart), nil
}

func lineInputs(lines []model.CartLineInput) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(lines))
	for _, l := range lines {
		out = append(out, map[string]interface{}{
			"quantity":      l.Quantity,
			"merchandiseId": l.ProductID,
		})
	}
	return out
}

func requireCartID(cartID string) error {
	if cartID == "" {
		return model.NewRejected("cart id is required for the shopify backend")
	}
	return nil
}

// CreateCart issues a new backend-side cart, optionally pre-filled.
func (s *Store) CreateCart(ctx context.Context, initialLines []model.CartLineInput) (*model.Cart, error) {
	var data struct {
		CartCreate cartPayload `json:"cartCreate"`
	}
	err := s.query(ctx, cartCreateMutation, map[string]interface{}{
		"lines": lineInputs(initialLines),
	}, &data)
	if err != nil {
		return nil, err
	}
	return resolvePayload("cartCreate", data.CartCreate)
}

// GetCart reads a cart by its backend-issued id.
func (s *Store) GetCart(ctx context.Context, cartID string) (*model.Cart, error) {
	if err := requireCartID(cartID); err != nil {
		return nil, err
	}

	var data struct {
		Cart *cartNode `json:"cart"`
	}
	if err := s.query(ctx, cartQuery, map[string]interface{}{"id": cartID}, &data); err != nil {
		return nil, err
	}
	if data.Cart == nil {
		return nil, model.NewRejected("cart " + cartID + " not found")
	}
	return mapCart(data.Cart), nil
}

func (s *Store) AddCartLines(ctx context.Context, cartID string, lines []model.CartLineInput) (*model.Cart, error) {
	if err := requireCartID(cartID); err != nil {
		return nil, err
	}

	var data struct {
		CartLinesAdd cartPayload `json:"cartLinesAdd"`
	}
	err := s.query(ctx, cartLinesAddMutation, map[string]interface{}{
		"cartId": cartID,
		"lines":  lineInputs(lines),
	}, &data)
	if err != nil {
		return nil, err
	}
	return resolvePayload("cartLinesAdd", data.CartLinesAdd)
}

// UpdateCartLineQuantity sets a line's quantity. Zero or less removes the
// line instead of leaving a degenerate quantity behind.
func (s *Store) UpdateCartLineQuantity(ctx context.Context, cartID, lineID string, quantity int) (*model.Cart, error) {
	if quantity <= 0 {
		return s.RemoveCartLine(ctx, cartID, lineID)
	}
	if err := requireCartID(cartID); err != nil {
		return nil, err
	}

	var data struct {
		CartLinesUpdate cartPayload `json:"cartLinesUpdate"`
	}
	err := s.query(ctx, cartLinesUpdateMutation, map[string]interface{}{
		"cartId": cartID,
		"lines": []map[string]interface{}{
			{"id": lineID, "quantity": quantity},
		},
	}, &data)
	if err != nil {
		return nil, err
	}
	return resolvePayload("cartLinesUpdate", data.CartLinesUpdate)
}

func (s *Store) RemoveCartLine(ctx context.Context, cartID, lineID string) (*model.Cart, error) {
	if err := requireCartID(cartID); err != nil {
		return nil, err
	}

	var data struct {
		CartLinesRemove cartPayload `json:"cartLinesRemove"`
	}
	err := s.query(ctx, cartLinesRemoveMutation, map[string]interface{}{
		"cartId":  cartID,
		"lineIds": []string{lineID},
	}, &data)
	if err != nil {
		return nil, err
	}
	return resolvePayload("cartLinesRemove", data.CartLinesRemove)
}

// ClearCart reads the cart and removes every line id. The Storefront API has
// no single clear primitive, so this costs two round trips.
func (s *Store) ClearCart(ctx context.Context, cartID string) (*model.Cart, error) {
	current, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if len(current.Lines) == 0 {
		return current, nil
	}

	lineIDs := make([]string, 0, len(current.Lines))
	for _, line := range current.Lines {
		lineIDs = append(lineIDs, line.ID)
	}

	var data struct {
		CartLinesRemove cartPayload `json:"cartLinesRemove"`
	}
	err = s.query(ctx, cartLinesRemoveMutation, map[string]interface{}{
		"cartId":  cartID,
		"lineIds": lineIDs,
	}, &data)
	if err != nil {
		return nil, err
	}
	return resolvePayload("cartLinesRemove", data.CartLinesRemove)
}
