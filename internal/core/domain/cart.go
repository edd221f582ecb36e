package domain

import "strings"

// A CartLineItem is a cart line. Name, Price and Image are a snapshot
// taken when the line was created and are never re-read from the catalog.
type CartLineItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}

// A CartItemInput describes the product variant added to a cart.
type CartItemInput struct {
	ProductID string
	Name      string
	Price     float64
	Image     string
	Size      string
	Color     string
}

// LineID returns the composite line key of the variant.
func (in CartItemInput) LineID() string {
	return LineID(in.ProductID, in.Size, in.Color)
}

// LineID builds the composite key of a (product, size, color) variant.
func LineID(productID, size, color string) string {
	return strings.Join([]string{productID, size, color}, "-")
}

// CartItemFromProduct snapshots the product for the given variant.
func CartItemFromProduct(p Product, size, color string) CartItemInput {
	return CartItemInput{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Size:      size,
		Color:     color,
	}
}
