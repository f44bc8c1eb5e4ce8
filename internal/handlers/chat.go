package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/walkinit/storefront/internal/ai"
)

type ChatHandler struct {
	AI *ai.Client
}

// Chat relays one stylist turn. The widget's "model" role is normalized to
// the API's assistant role; the reply is always a string, never an error.
func (h *ChatHandler) Chat(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		History []ai.Message `json:"history"`
		Message string       `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	history := make([]ai.Message, 0, len(req.History))
	for _, m := range req.History {
		if m.Role == "model" {
			m.Role = ai.RoleAssistant
		}
		history = append(history, m)
	}

	reply := h.AI.StylistReply(ctx, history, req.Message)
	return c.JSON(http.StatusOK, map[string]string{"reply": reply})
}
