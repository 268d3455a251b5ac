// internal/domain/cart/service.go
package cart

import (
	"sync"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Line is one cart entry: a product snapshot plus a quantity.
// At most one line exists per distinct product id.
type Line struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Totals summarises a cart for the header badge and checkout summary
type Totals struct {
	LineCount int     `json:"line_count"` // sum of quantities, not number of lines
	Subtotal  float64 `json:"subtotal"`
}

// Manager owns one cart per session. Carts live for the session only and
// are not scoped per store: switching the browsed store keeps existing
// lines from other stores.
type Manager struct {
	mu    sync.RWMutex
	carts map[string][]Line
}

// NewManager creates a new cart manager
func NewManager() *Manager {
	return &Manager{carts: make(map[string][]Line)}
}

// Items returns a fresh snapshot of the session's cart lines
func (m *Manager) Items(sessionID string) []Line {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lines := m.carts[sessionID]
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// Add puts one unit of the product in the cart. If a line for the same
// product id already exists its quantity is incremented by 1; otherwise a
// new line with quantity 1 is appended. Stock is not consulted here.
func (m *Manager) Add(sessionID string, product catalog.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines := m.carts[sessionID]
	for i := range lines {
		if lines[i].ID == product.ID {
			lines[i].Quantity++
			return
		}
	}
	m.carts[sessionID] = append(lines, Line{Product: product, Quantity: 1})
}

// Remove deletes the matching line entirely, regardless of quantity
func (m *Manager) Remove(sessionID, productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines := m.carts[sessionID]
	for i := range lines {
		if lines[i].ID == productID {
			m.carts[sessionID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// SetQuantityDelta adjusts a line's quantity by delta, flooring at 1.
// Reducing below 1 is a no-op floor, not a removal; use Remove to zero out.
func (m *Manager) SetQuantityDelta(sessionID, productID string, delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines := m.carts[sessionID]
	for i := range lines {
		if lines[i].ID == productID {
			next := lines[i].Quantity + delta
			if next < 1 {
				next = 1
			}
			lines[i].Quantity = next
			return
		}
	}
}

// Clear empties all lines for the session
func (m *Manager) Clear(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, sessionID)
}

// Totals recomputes the badge count and subtotal from the current lines
func (m *Manager) Totals(sessionID string) Totals {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var totals Totals
	for _, line := range m.carts[sessionID] {
		totals.LineCount += line.Quantity
		totals.Subtotal += line.Price * float64(line.Quantity)
	}
	return totals
}
