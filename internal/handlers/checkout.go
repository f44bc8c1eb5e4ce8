package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/walkinit/storefront/internal/checkout"
	"github.com/walkinit/storefront/internal/events"
	"github.com/walkinit/storefront/internal/logging"
	"github.com/walkinit/storefront/internal/shop"
)

type CheckoutHandler struct {
	Shop     *shop.State
	Machine  *checkout.Machine
	Producer *events.Producer
}

func (h *CheckoutHandler) GetState(c echo.Context) error {
	lines := h.Shop.Cart()
	sub := shop.Subtotal(lines)
	return c.JSON(http.StatusOK, map[string]any{
		"state":    h.Machine.State(),
		"lines":    lines,
		"subtotal": sub,
		"shipping": shop.Shipping(sub),
		"total":    sub + shop.Shipping(sub),
	})
}

func (h *CheckoutHandler) Begin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.begin")

	if err := h.Machine.Begin(); err != nil {
		l.Warn("checkout_begin_failed", "status", 400, "reason", "empty cart")
		return echo.NewHTTPError(http.StatusBadRequest, "your cart is empty")
	}
	l.Info("checkout_begin_success")
	return c.JSON(http.StatusOK, map[string]any{"state": h.Machine.State()})
}

func (h *CheckoutHandler) Cancel(c echo.Context) error {
	h.Machine.Cancel()
	return c.JSON(http.StatusOK, map[string]any{"state": h.Machine.State()})
}

func (h *CheckoutHandler) Reset(c echo.Context) error {
	h.Machine.Reset()
	return c.JSON(http.StatusOK, map[string]any{"state": h.Machine.State()})
}

// Submit is the single outbound write of the storefront. A failure leaves the
// machine in Checkout with the cart intact; the shopper retries manually.
func (h *CheckoutHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.submit")

	var form checkout.Form
	if err := c.Bind(&form); err != nil {
		l.Warn("checkout_submit_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if form.Name == "" || form.Email == "" || form.Address == "" || form.City == "" || form.Zip == "" {
		l.Warn("checkout_submit_failed", "status", 400, "reason", "missing contact fields")
		return echo.NewHTTPError(http.StatusBadRequest, "please fill in all contact and shipping fields")
	}

	order, err := h.Machine.Submit(ctx, form)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrNotInCheckout):
			l.Warn("checkout_submit_failed", "status", 409, "reason", "not in checkout")
			return echo.NewHTTPError(http.StatusConflict, "not in checkout")
		case errors.Is(err, checkout.ErrInFlight):
			l.Warn("checkout_submit_failed", "status", 409, "reason", "submission in flight")
			return echo.NewHTTPError(http.StatusConflict, "a submission is already in progress")
		case errors.Is(err, checkout.ErrEmptyCart):
			l.Warn("checkout_submit_failed", "status", 400, "reason", "empty cart")
			return echo.NewHTTPError(http.StatusBadRequest, "your cart is empty")
		default:
			l.Error("checkout_submit_failed", "status", 502, "reason", "order store insert failed", "error", err)
			return echo.NewHTTPError(http.StatusBadGateway, "there was an issue processing your order, please try again")
		}
	}

	publish(c, h.Producer, events.TopicOrders, form.Email, map[string]any{
		"type":           "order_created",
		"customer_email": order.CustomerEmail,
		"total_amount":   order.TotalAmount,
		"status":         order.Status,
	})
	l.Info("checkout_submit_success", "total", order.TotalAmount)
	return c.JSON(http.StatusOK, map[string]any{
		"state": h.Machine.State(),
		"order": order,
	})
}
