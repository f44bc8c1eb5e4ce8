package shop

import "github.com/walkinit/storefront/internal/models"

// SeedCatalog is the launch assortment shown before any admin additions.
func SeedCatalog() []models.Product {
	return []models.Product{
		{
			ID:          "p1",
			Name:        "Velocity Runner X",
			Price:       129.99,
			Category:    "Running",
			Sizes:       []float64{7, 8, 9, 10, 11, 12},
			Colors:      []string{"Black", "Volt", "White"},
			Image:       "https://picsum.photos/id/21/600/600",
			Description: "Featherweight mesh upper with a responsive foam midsole built for tempo days.",
			IsFeatured:  true,
		},
		{
			ID:          "p2",
			Name:        "Court Legacy Mid",
			Price:       94.5,
			Category:    "Basketball",
			Sizes:       []float64{8, 9, 10, 11, 12, 13},
			Colors:      []string{"Black", "Red"},
			Image:       "https://picsum.photos/id/103/600/600",
			Description: "Mid-top lockdown and herringbone traction for quick first steps.",
		},
		{
			ID:          "p3",
			Name:        "Daily Drift Canvas",
			Price:       59.0,
			Category:    "Lifestyle",
			Sizes:       []float64{6, 7, 8, 9, 10, 11},
			Colors:      []string{"White", "Navy", "Olive"},
			Image:       "https://picsum.photos/id/160/600/600",
			Description: "A clean everyday silhouette that goes with literally everything.",
			IsFeatured:  true,
		},
		{
			ID:          "p4",
			Name:        "Trailbreak GTX",
			Price:       149.0,
			Category:    "Running",
			Sizes:       []float64{8, 9, 10, 11, 12},
			Colors:      []string{"Olive", "Black"},
			Image:       "https://picsum.photos/id/28/600/600",
			Description: "Waterproof membrane and aggressive lugs for off-road miles in any weather.",
		},
	}
}

// SeedUser is the read-only session identity; there is no registration flow.
func SeedUser() *models.User {
	return &models.User{
		ID:    "u1",
		Name:  "Alex Walker",
		Email: "alex@walkin.it",
		Role:  models.RoleUser,
	}
}
