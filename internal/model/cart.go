package model

// CartLineInput is the caller-supplied request to add a product to a cart.
type CartLineInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartLine is one row in a cart. Its ID is generated at line creation time and
// is independent of the product it references. A cart holds at most one line
// per product ID.
type CartLine struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart is a set of cart lines identified by an opaque cart ID. TotalQuantity
// is derived and always equals the sum of the line quantities.
type Cart struct {
	ID            string     `json:"id"`
	Lines         []CartLine `json:"lines"`
	TotalQuantity int        `json:"totalQuantity"`
}

// Recalculate returns the cart with TotalQuantity recomputed from its lines.
func (c Cart) Recalculate() Cart {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	c.TotalQuantity = total
	return c
}

// FindLine returns the line with the given line ID, or nil.
func (c Cart) FindLine(lineID string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			return &c.Lines[i]
		}
	}
	return nil
}
