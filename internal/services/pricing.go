package service

import (
	"math"

	"github.com/lojatricolor/storefront/internal/models"
)

const (
	// Orders at or above this subtotal ship for free.
	freeShippingThreshold = 200.00
	shippingFlatRate      = 25.90
	// Instant-transfer (Pix) orders get this share of the subtotal off.
	pixDiscountRate = 0.05
)

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeQuote applies the shipping and discount rules to a cart.
func ComputeQuote(items []models.CartItem, method models.PaymentMethod) models.Quote {

	var subtotal float64

	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	subtotal = roundCents(subtotal)

	shipping := shippingFlatRate
	if subtotal >= freeShippingThreshold {
		shipping = 0
	}

	var discount float64
	if method == models.PaymentMethodPix {
		discount = roundCents(subtotal * pixDiscountRate)
	}

	return models.Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Discount: discount,
		Total:    roundCents(subtotal + shipping - discount),
	}
}
