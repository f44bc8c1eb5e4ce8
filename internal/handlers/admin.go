package handlers

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/walkinit/storefront/internal/ai"
	"github.com/walkinit/storefront/internal/events"
	"github.com/walkinit/storefront/internal/logging"
	"github.com/walkinit/storefront/internal/models"
	"github.com/walkinit/storefront/internal/search"
	"github.com/walkinit/storefront/internal/shop"
)

type AdminHandler struct {
	Shop     *shop.State
	AI       *ai.Client
	Producer *events.Producer
	ES       *elasticsearch.Client
}

// CreateProduct adds a product to the catalog. Ids are generated here, not
// supplied by the form.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.create_product")

	var req struct {
		Name        string    `json:"name"`
		Price       float64   `json:"price"`
		Category    string    `json:"category"`
		Sizes       []float64 `json:"sizes"`
		Colors      []string  `json:"colors"`
		Image       string    `json:"image"`
		Description string    `json:"description"`
		IsFeatured  bool      `json:"is_featured"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" {
		l.Warn("create_product_failed", "status", 400, "reason", "name required")
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if req.Price < 0 {
		l.Warn("create_product_failed", "status", 400, "reason", "negative price")
		return echo.NewHTTPError(http.StatusBadRequest, "price must be non-negative")
	}

	prod := models.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Sizes:       req.Sizes,
		Colors:      req.Colors,
		Image:       req.Image,
		Description: req.Description,
		IsFeatured:  req.IsFeatured,
	}
	h.Shop.AddProduct(prod)

	if h.ES != nil {
		if err := search.IndexProduct(ctx, h.ES, prod); err != nil {
			l.Error("product_index_failed", "product_id", prod.ID, "error", err)
		}
	}

	publish(c, h.Producer, events.TopicProducts, prod.ID, map[string]any{
		"type":       "product_created",
		"product_id": prod.ID,
		"name":       prod.Name,
	})
	l.Info("create_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusCreated, prod)
}

// GenerateDescription asks the language model for marketing copy; the
// response is always a string, fallback text included.
func (h *AdminHandler) GenerateDescription(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Name     string `json:"name"`
		Features string `json:"features"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	desc := h.AI.GenerateDescription(ctx, req.Name, req.Features)
	return c.JSON(http.StatusOK, map[string]string{"description": desc})
}
