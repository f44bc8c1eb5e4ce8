package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/walkinit/storefront/internal/models"
	"github.com/walkinit/storefront/internal/shop"
)

func doJSONRequest(t *testing.T, method, target string, body any, cookies ...*http.Cookie) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	return rec, c
}

func seededShop(t *testing.T) *shop.State {
	t.Helper()
	catalog := []models.Product{
		{
			ID:       "p1",
			Name:     "Velocity Runner X",
			Price:    60,
			Category: "Running",
			Sizes:    []float64{9, 10},
			Colors:   []string{"Black", "White"},
		},
		{
			ID:       "p2",
			Name:     "Daily Drift Canvas",
			Price:    120,
			Category: "Lifestyle",
			Sizes:    []float64{8, 9},
			Colors:   []string{"Navy"},
		},
	}
	return shop.New(catalog, shop.SeedUser())
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	require.Equal(t, code, he.Code)
}
