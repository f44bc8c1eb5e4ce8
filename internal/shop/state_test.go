package shop

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/walkinit/storefront/internal/models"
)

func testProduct(id string, price float64) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Test Shoe " + id,
		Price:    price,
		Category: "Running",
		Sizes:    []float64{9, 10},
		Colors:   []string{"Black", "White"},
	}
}

func TestAddToCartMergesSameSelection(t *testing.T) {
	s := New(nil, nil)
	p := testProduct("p1", 60)

	s.AddToCart(p, 9, "Black")
	s.AddToCart(p, 9, "Black")

	cart := s.Cart()
	require.Len(t, cart, 1)
	require.Equal(t, uint(2), cart[0].Quantity)
	require.Equal(t, float64(9), cart[0].SelectedSize)
	require.Equal(t, "Black", cart[0].SelectedColor)
}

func TestAddToCartDistinctVariants(t *testing.T) {
	s := New(nil, nil)
	p := testProduct("p1", 60)

	s.AddToCart(p, 9, "Black")
	s.AddToCart(p, 10, "Black")
	s.AddToCart(p, 9, "White")

	cart := s.Cart()
	require.Len(t, cart, 3)
	for _, line := range cart {
		require.Equal(t, uint(1), line.Quantity)
	}
}

func TestRemoveFromCartDropsEveryVariant(t *testing.T) {
	s := New(nil, nil)
	a := testProduct("p1", 60)
	b := testProduct("p2", 80)

	s.AddToCart(a, 9, "Black")
	s.AddToCart(a, 10, "White")
	s.AddToCart(b, 9, "Black")

	s.RemoveFromCart("p1")

	cart := s.Cart()
	require.Len(t, cart, 1)
	require.Equal(t, "p2", cart[0].Product.ID)
}

func TestRemoveFromCartUnknownProductIsNoop(t *testing.T) {
	s := New(nil, nil)
	s.AddToCart(testProduct("p1", 60), 9, "Black")

	s.RemoveFromCart("nope")

	require.Len(t, s.Cart(), 1)
}

func TestClearCartIdempotent(t *testing.T) {
	s := New(nil, nil)
	s.AddToCart(testProduct("p1", 60), 9, "Black")

	s.ClearCart()
	require.Empty(t, s.Cart())

	s.ClearCart()
	require.Empty(t, s.Cart())
}

func TestCartPreservesInsertionOrder(t *testing.T) {
	s := New(nil, nil)
	s.AddToCart(testProduct("p2", 80), 9, "Black")
	s.AddToCart(testProduct("p1", 60), 9, "Black")
	s.AddToCart(testProduct("p2", 80), 9, "Black") // merge, order unchanged

	cart := s.Cart()
	require.Len(t, cart, 2)
	require.Equal(t, "p2", cart[0].Product.ID)
	require.Equal(t, "p1", cart[1].Product.ID)
}

func TestAddProductPrepends(t *testing.T) {
	s := New([]models.Product{testProduct("p1", 60)}, nil)

	s.AddProduct(testProduct("p2", 80))

	catalog := s.Products()
	require.Len(t, catalog, 2)
	require.Equal(t, "p2", catalog[0].ID)
	require.Equal(t, "p1", catalog[1].ID)
}

func TestSubscribersNotifiedSynchronously(t *testing.T) {
	s := New(nil, nil)
	calls := 0
	s.Subscribe(func() { calls++ })

	s.AddToCart(testProduct("p1", 60), 9, "Black")
	require.Equal(t, 1, calls)

	s.RemoveFromCart("p1")
	require.Equal(t, 2, calls)

	s.ClearCart()
	require.Equal(t, 3, calls)

	s.AddProduct(testProduct("p2", 80))
	require.Equal(t, 4, calls)
}

func TestProductLookup(t *testing.T) {
	s := New([]models.Product{testProduct("p1", 60)}, nil)

	p, ok := s.Product("p1")
	require.True(t, ok)
	require.Equal(t, "p1", p.ID)

	_, ok = s.Product("missing")
	require.False(t, ok)
}
