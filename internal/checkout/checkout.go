// Package checkout drives the order lifecycle: Browsing -> Checkout ->
// Complete, with an explicit cancel path back to Browsing.
package checkout

import (
	"context"
	"errors"
	"sync"

	"github.com/walkinit/storefront/internal/models"
	"github.com/walkinit/storefront/internal/orderstore"
	"github.com/walkinit/storefront/internal/shop"
)

type State string

const (
	StateBrowsing State = "browsing"
	StateCheckout State = "checkout"
	StateComplete State = "complete"
)

var (
	ErrEmptyCart     = errors.New("checkout: cart is empty")
	ErrNotInCheckout = errors.New("checkout: not in checkout state")
	ErrInFlight      = errors.New("checkout: submission already in flight")
)

// Form carries the contact and shipping fields. Card, Expiry and CVV are
// accepted from the client but are never part of the persisted order.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Card    string `json:"card"`
	Expiry  string `json:"expiry"`
	CVV     string `json:"cvv"`
}

// Machine owns the checkout state and the in-flight guard. The guard, not the
// caller's UI, is what prevents a double submission.
type Machine struct {
	mu       sync.Mutex
	state    State
	inFlight bool

	shop  *shop.State
	store orderstore.Store
}

func NewMachine(s *shop.State, store orderstore.Store) *Machine {
	return &Machine{state: StateBrowsing, shop: s, store: store}
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Begin moves Browsing -> Checkout. An empty cart never enters checkout.
func (m *Machine) Begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateCheckout {
		return nil
	}
	if len(m.shop.Cart()) == 0 {
		return ErrEmptyCart
	}
	m.state = StateCheckout
	return nil
}

// Cancel returns to Browsing without losing the cart.
func (m *Machine) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateCheckout && !m.inFlight {
		m.state = StateBrowsing
	}
}

// Reset starts a new browsing session after a completed order.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateComplete {
		m.state = StateBrowsing
	}
}

// Submit builds the order payload from the current cart and inserts it into
// the order store. On success the cart is cleared and the machine is Complete;
// on failure it stays in Checkout with the cart untouched, and the caller
// surfaces the error to the user. No automatic retry.
func (m *Machine) Submit(ctx context.Context, form Form) (*orderstore.Order, error) {
	m.mu.Lock()
	if m.state != StateCheckout {
		m.mu.Unlock()
		return nil, ErrNotInCheckout
	}
	if m.inFlight {
		m.mu.Unlock()
		return nil, ErrInFlight
	}
	m.inFlight = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.inFlight = false
		m.mu.Unlock()
	}()

	lines := m.shop.Cart()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	order, err := m.buildOrder(form, lines)
	if err != nil {
		return nil, err
	}
	if err := m.store.Insert(ctx, order); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.state = StateComplete
	m.mu.Unlock()
	m.shop.ClearCart()
	return order, nil
}

func (m *Machine) buildOrder(form Form, lines []models.CartLine) (*orderstore.Order, error) {
	return orderstore.NewOrder(
		form.Name, form.Email, form.Address, form.City, form.Zip,
		lines, shop.Total(lines),
	)
}
