package handlers

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/walkinit/storefront/internal/events"
	"github.com/walkinit/storefront/internal/logging"
)

// publish fires an event without failing the request; broker trouble is the
// operator's problem, not the shopper's.
func publish(c echo.Context, p *events.Producer, topic, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event_publish_failed", "topic", topic, "error", err)
	}
}
