package models

// Product is immutable once created: seeded at startup or added by an admin,
// never deleted.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Sizes       []float64 `json:"sizes"`
	Colors      []string  `json:"colors"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	IsFeatured  bool      `json:"is_featured,omitempty"`
}

// LineKey identifies a cart line: two additions merge only when the whole
// triple matches.
type LineKey struct {
	ProductID string
	Size      float64
	Color     string
}

type CartLine struct {
	Product
	SelectedSize  float64 `json:"selected_size"`
	SelectedColor string  `json:"selected_color"`
	Quantity      uint    `json:"quantity"`
}

func (l CartLine) Key() LineKey {
	return LineKey{ProductID: l.Product.ID, Size: l.SelectedSize, Color: l.SelectedColor}
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
}
