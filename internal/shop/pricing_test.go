package shop

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/walkinit/storefront/internal/models"
)

func TestSubtotal(t *testing.T) {
	require.Equal(t, float64(0), Subtotal(nil))

	lines := []models.CartLine{
		{Product: testProduct("p1", 60), Quantity: 2},
		{Product: testProduct("p2", 19.99), Quantity: 1},
	}
	require.InDelta(t, 139.99, Subtotal(lines), 1e-9)
}

func TestShippingThreshold(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		want     float64
	}{
		{"empty cart", 0, 15},
		{"below threshold", 60, 15},
		{"exactly at threshold", 100, 15},
		{"just above threshold", 100.01, 0},
		{"well above threshold", 500, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Shipping(tt.subtotal))
		})
	}
}

func TestTotalEndToEnd(t *testing.T) {
	s := New([]models.Product{testProduct("p1", 60)}, nil)
	p, _ := s.Product("p1")

	s.AddToCart(p, 9, "Black")
	cart := s.Cart()
	require.Equal(t, float64(60), Subtotal(cart))
	require.Equal(t, float64(15), Shipping(Subtotal(cart)))
	require.Equal(t, float64(75), Total(cart))

	s.AddToCart(p, 9, "Black")
	cart = s.Cart()
	require.Len(t, cart, 1)
	require.Equal(t, uint(2), cart[0].Quantity)
	require.Equal(t, float64(120), Subtotal(cart))
	require.Equal(t, float64(0), Shipping(Subtotal(cart)))
	require.Equal(t, float64(120), Total(cart))
}
