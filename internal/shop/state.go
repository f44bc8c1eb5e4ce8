// Package shop holds the in-process storefront state: the product catalog,
// the shopping cart and the current user. A single *State is constructed in
// main and handed to every consumer; there is no package-level instance.
package shop

import (
	"sync"

	"github.com/walkinit/storefront/internal/models"
)

type State struct {
	mu       sync.Mutex
	products []models.Product
	lines    map[models.LineKey]*models.CartLine
	order    []models.LineKey
	user     *models.User
	subs     []func()
}

func New(catalog []models.Product, user *models.User) *State {
	return &State{
		products: append([]models.Product(nil), catalog...),
		lines:    make(map[models.LineKey]*models.CartLine),
		user:     user,
	}
}

// Subscribe registers fn to run synchronously after every mutation, before
// the mutating call returns.
func (s *State) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *State) notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}

func (s *State) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.products...)
}

func (s *State) Product(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Cart returns a snapshot of the cart lines in display (insertion) order.
func (s *State) Cart() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartLocked()
}

func (s *State) cartLocked() []models.CartLine {
	out := make([]models.CartLine, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, *s.lines[k])
	}
	return out
}

func (s *State) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// AddToCart merges by identity key: an existing (product, size, color) line
// gets its quantity bumped, otherwise a new line with quantity 1 is appended.
// Size and color membership is the caller's responsibility.
func (s *State) AddToCart(p models.Product, size float64, color string) {
	s.mu.Lock()
	key := models.LineKey{ProductID: p.ID, Size: size, Color: color}
	if line, ok := s.lines[key]; ok {
		line.Quantity++
	} else {
		s.lines[key] = &models.CartLine{
			Product:       p,
			SelectedSize:  size,
			SelectedColor: color,
			Quantity:      1,
		}
		s.order = append(s.order, key)
	}
	subs := s.subs
	s.mu.Unlock()
	s.notify(subs)
}

// RemoveFromCart drops every line of the product, regardless of the chosen
// size and color. No-op when the product is not in the cart.
func (s *State) RemoveFromCart(productID string) {
	s.mu.Lock()
	kept := s.order[:0]
	for _, k := range s.order {
		if k.ProductID == productID {
			delete(s.lines, k)
			continue
		}
		kept = append(kept, k)
	}
	s.order = kept
	subs := s.subs
	s.mu.Unlock()
	s.notify(subs)
}

func (s *State) ClearCart() {
	s.mu.Lock()
	s.lines = make(map[models.LineKey]*models.CartLine)
	s.order = nil
	subs := s.subs
	s.mu.Unlock()
	s.notify(subs)
}

// AddProduct prepends a fully-formed product to the catalog. The caller
// supplies the id; well-formedness is not re-checked here.
func (s *State) AddProduct(p models.Product) {
	s.mu.Lock()
	s.products = append([]models.Product{p}, s.products...)
	subs := s.subs
	s.mu.Unlock()
	s.notify(subs)
}
