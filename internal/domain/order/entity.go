// internal/domain/order/entity.go
package order

import (
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Status represents the order status
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
)

// ValidStatus reports whether s is one of the four order statuses
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// StatusIndex returns the position of s in the forward progression
// Pending -> Processing -> Shipped -> Delivered, or -1 if unknown.
func StatusIndex(s Status) int {
	for i, known := range []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered} {
		if s == known {
			return i
		}
	}
	return -1
}

// PaymentMethod represents how an order was paid
type PaymentMethod string

const (
	PaymentMethodCOD     PaymentMethod = "COD"
	PaymentMethodGateway PaymentMethod = "Razorpay"
)

// Item is a frozen snapshot of one cart line at time of purchase
type Item struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Order represents a placed order. Items are immutable after creation.
type Order struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customer_name"`
	Email           string        `json:"email"`
	StoreID         string        `json:"store_id"`
	Total           float64       `json:"total"`
	Status          Status        `json:"status"`
	Date            string        `json:"date"`
	Items           []Item        `json:"items"`
	ShippingAddress string        `json:"shipping_address"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
}

// Repository provides access to the order ledger. Insert places the order
// at the front so listings are most-recent-first, and assigns an id when
// the order carries none.
type Repository interface {
	Insert(o Order) Order
	Get(id string) (Order, bool)
	List(storeID string) []Order
	Update(o Order) bool
}
