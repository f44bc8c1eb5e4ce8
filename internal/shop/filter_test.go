package shop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/walkinit/storefront/internal/models"
)

func filterCatalog() []models.Product {
	return []models.Product{
		{ID: "p1", Category: "Running", Price: 120},
		{ID: "p2", Category: "Lifestyle", Price: 59},
		{ID: "p3", Category: "Running", Price: 89},
		{ID: "p4", Category: "Basketball", Price: 140},
	}
}

func TestFilterShowAll(t *testing.T) {
	catalog := filterCatalog()
	got := Filter(catalog, CategoryAll, math.MaxFloat64)
	require.Equal(t, catalog, got)
}

func TestFilterByCategory(t *testing.T) {
	got := Filter(filterCatalog(), "Running", math.MaxFloat64)
	require.Len(t, got, 2)
	require.Equal(t, "p1", got[0].ID)
	require.Equal(t, "p3", got[1].ID)
}

func TestFilterByPriceCeiling(t *testing.T) {
	got := Filter(filterCatalog(), CategoryAll, 100)
	require.Len(t, got, 2)
	require.Equal(t, "p2", got[0].ID)
	require.Equal(t, "p3", got[1].ID)
}

func TestFilterZeroCeilingReturnsNothing(t *testing.T) {
	got := Filter(filterCatalog(), CategoryAll, 0)
	require.Empty(t, got)
}

func TestFilterCategoryAndPrice(t *testing.T) {
	got := Filter(filterCatalog(), "Running", 100)
	require.Len(t, got, 1)
	require.Equal(t, "p3", got[0].ID)
}

func TestCategoriesDistinctWithShowAllFirst(t *testing.T) {
	got := Categories(filterCatalog())
	require.Equal(t, []string{CategoryAll, "Running", "Lifestyle", "Basketball"}, got)
}

func TestCategoriesEmptyCatalog(t *testing.T) {
	require.Equal(t, []string{CategoryAll}, Categories(nil))
}
