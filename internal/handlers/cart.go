package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/walkinit/storefront/internal/events"
	"github.com/walkinit/storefront/internal/logging"
	"github.com/walkinit/storefront/internal/models"
	"github.com/walkinit/storefront/internal/shop"
)

type CartHandler struct {
	Shop     *shop.State
	Producer *events.Producer
}

type cartResponse struct {
	Lines    []models.CartLine `json:"lines"`
	Subtotal float64           `json:"subtotal"`
	Shipping float64           `json:"shipping"`
	Total    float64           `json:"total"`
}

func (h *CartHandler) cartResponse() cartResponse {
	lines := h.Shop.Cart()
	sub := shop.Subtotal(lines)
	return cartResponse{
		Lines:    lines,
		Subtotal: sub,
		Shipping: shop.Shipping(sub),
		Total:    sub + shop.Shipping(sub),
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cartResponse())
}

// AddToCart validates the selection at the boundary (missing or unknown
// size/color is blocked here); the state container itself does not
// re-validate.
func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req struct {
		ProductID string  `json:"product_id"`
		Size      float64 `json:"size"`
		Color     string  `json:"color"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, ok := h.Shop.Product(req.ProductID)
	if !ok {
		l.Warn("add_to_cart_failed", "status", 404, "reason", "product not found", "id", req.ProductID)
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if !containsFloat(product.Sizes, req.Size) {
		l.Warn("add_to_cart_failed", "status", 400, "reason", "size not offered", "size", req.Size)
		return echo.NewHTTPError(http.StatusBadRequest, "please select an available size")
	}
	if !containsString(product.Colors, req.Color) {
		l.Warn("add_to_cart_failed", "status", 400, "reason", "color not offered", "color", req.Color)
		return echo.NewHTTPError(http.StatusBadRequest, "please select an available color")
	}

	h.Shop.AddToCart(product, req.Size, req.Color)

	publish(c, h.Producer, events.TopicCart, product.ID, map[string]any{
		"type":       "cart_line_added",
		"product_id": product.ID,
		"size":       req.Size,
		"color":      req.Color,
	})
	l.Info("add_to_cart_success", "product_id", product.ID)
	return c.JSON(http.StatusOK, h.cartResponse())
}

// RemoveFromCart drops every variant of the product; removal does not
// disambiguate by size or color.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	productID := c.Param("id")
	h.Shop.RemoveFromCart(productID)

	publish(c, h.Producer, events.TopicCart, productID, map[string]any{
		"type":       "cart_product_removed",
		"product_id": productID,
	})
	return c.JSON(http.StatusOK, h.cartResponse())
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	h.Shop.ClearCart()

	publish(c, h.Producer, events.TopicCart, "cart", map[string]any{
		"type": "cart_cleared",
	})
	return c.JSON(http.StatusOK, h.cartResponse())
}

func containsFloat(xs []float64, v float64) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
