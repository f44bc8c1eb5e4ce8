package shop

import "github.com/walkinit/storefront/internal/models"

// CategoryAll is the "show all" selector.
const CategoryAll = "All"

// Filter narrows the catalog by category and price ceiling, preserving
// insertion order.
func Filter(catalog []models.Product, category string, maxPrice float64) []models.Product {
	out := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		if category != CategoryAll && category != "" && p.Category != category {
			continue
		}
		if p.Price > maxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories returns the distinct categories present in the catalog, in
// first-seen order, prefixed with the "show all" option.
func Categories(catalog []models.Product) []string {
	seen := make(map[string]struct{}, len(catalog))
	out := []string{CategoryAll}
	for _, p := range catalog {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
