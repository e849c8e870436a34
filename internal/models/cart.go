package models

import "time"

// CartItem is a product line in the cart. Quantity is always >= 1; a
// decrement to zero removes the line instead.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CartRecord is the shape persisted at carts/{cartId}.
type CartRecord struct {
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartView is what the API returns: the line items plus derived totals.
type CartView struct {
	CartID     string     `json:"cartId"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}
