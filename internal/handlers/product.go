package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/walkinit/storefront/internal/logging"
	"github.com/walkinit/storefront/internal/shop"
	"github.com/walkinit/storefront/internal/util"
)

type ProductHandler struct {
	Shop *shop.State
}

// GetProducts lists the catalog narrowed by ?category= and ?max_price=, in
// insertion order, with pagination meta.
func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	category := c.QueryParam("category")
	if category == "" {
		category = shop.CategoryAll
	}

	maxPrice := math.MaxFloat64
	if raw := c.QueryParam("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			l.Warn("get_products_failed", "status", 400, "reason", "max_price is not a number")
			return echo.NewHTTPError(http.StatusBadRequest, "max_price is not a number")
		}
		maxPrice = v
	}

	catalog := h.Shop.Products()
	filtered := shop.Filter(catalog, category, maxPrice)

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total := len(filtered)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data":       filtered[offset:end],
		"categories": shop.Categories(catalog),
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + limit - 1) / limit,
			"has_prev":    page > 1,
			"has_next":    end < total,
		},
	})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id := c.Param("id")
	product, ok := h.Shop.Product(id)
	if !ok {
		l.Warn("get_product_failed", "status", 404, "reason", "product not found", "id", id)
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, product)
}
