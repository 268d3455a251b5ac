// internal/domain/order/service.go
package order

import (
	"errors"
	"fmt"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// ErrNotFound is returned when an exact-id lookup matches nothing
var ErrNotFound = errors.New("order not found")

// ErrValidation is returned when a mutation is rejected before any state change
var ErrValidation = errors.New("validation failed")

// Stats aggregates the ledger for the dashboard
type Stats struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalOrders    int     `json:"total_orders"`
	ActiveProducts int     `json:"active_products"`
}

// Service handles order ledger business logic
type Service struct {
	orders   Repository
	products catalog.ProductRepository
}

// NewService creates a new order service
func NewService(orders Repository, products catalog.ProductRepository) *Service {
	return &Service{
		orders:   orders,
		products: products,
	}
}

// Place inserts the order at the front of the ledger and returns it with
// its assigned id. Existing orders are never mutated by placement.
func (s *Service) Place(o Order) (Order, error) {
	if o.StoreID == "" {
		return Order{}, fmt.Errorf("order store id is required: %w", ErrValidation)
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	return s.orders.Insert(o), nil
}

// Get returns the order with exactly the given id. Tracking expects the
// literal id, so there is no fuzzy matching.
func (s *Service) Get(id string) (Order, error) {
	o, ok := s.orders.Get(id)
	if !ok {
		return Order{}, fmt.Errorf("order %q: %w", id, ErrNotFound)
	}
	return o, nil
}

// List returns orders most-recent-first, optionally filtered by store id
func (s *Service) List(storeID string) []Order {
	return s.orders.List(storeID)
}

// UpdateStatus sets the status of an existing order. Progression is
// expected to move forward through Pending, Processing, Shipped and
// Delivered, but the transition is driven by admin action and not
// enforced here.
func (s *Service) UpdateStatus(id string, status Status) (Order, error) {
	if !ValidStatus(status) {
		return Order{}, fmt.Errorf("unknown order status %q: %w", status, ErrValidation)
	}

	o, ok := s.orders.Get(id)
	if !ok {
		return Order{}, fmt.Errorf("order %q: %w", id, ErrNotFound)
	}

	o.Status = status
	s.orders.Update(o)
	return o, nil
}

// Stats computes dashboard aggregates over the filtered ledger. An empty
// ledger yields all-zero stats.
func (s *Service) Stats(storeID string) Stats {
	orders := s.orders.List(storeID)

	stats := Stats{
		TotalOrders:    len(orders),
		ActiveProducts: len(s.products.List(storeID)),
	}
	for _, o := range orders {
		stats.TotalRevenue += o.Total
	}
	return stats
}
