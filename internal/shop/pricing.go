package shop

import "github.com/walkinit/storefront/internal/models"

const (
	// FreeShippingThreshold is exclusive: a subtotal of exactly 100 still
	// pays the flat rate.
	FreeShippingThreshold = 100
	FlatShippingRate      = 15
)

func Subtotal(lines []models.CartLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Price * float64(l.Quantity)
	}
	return sum
}

func Shipping(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return FlatShippingRate
}

func Total(lines []models.CartLine) float64 {
	sub := Subtotal(lines)
	return sub + Shipping(sub)
}
