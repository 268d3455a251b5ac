// internal/domain/checkout/service.go
package checkout

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/pkg/metrics"
)

// ErrEmptyCart is returned when checkout begins with nothing in the cart
var ErrEmptyCart = errors.New("cart is empty")

// ErrNotAuthenticated is returned when no customer is signed in
var ErrNotAuthenticated = errors.New("customer not authenticated")

// ErrCheckoutInProgress is returned when a session already has an
// unconfirmed checkout; at most one is in flight per session
var ErrCheckoutInProgress = errors.New("checkout already in progress")

// ErrUnknownCheckout is returned when a confirm or cancel names no pending
// checkout
var ErrUnknownCheckout = errors.New("unknown checkout")

// ErrGatewayNotConfigured is returned when the online payment method is
// chosen but the active store carries no gateway key
var ErrGatewayNotConfigured = errors.New("payment gateway not configured")

// ShippingDetails is the checkout form input
type ShippingDetails struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	Zip       string `json:"zip" binding:"required"`
}

// Prefill carries customer details for the payment dialog
type Prefill struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PaymentRequest is what the external payment confirmation service is
// handed when a checkout begins
type PaymentRequest struct {
	CheckoutID   string  `json:"checkout_id"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	MerchantName string  `json:"merchant_name"`
	GatewayKey   string  `json:"gateway_key,omitempty"`
	Prefill      Prefill `json:"prefill"`
}

// intent is a pending, unconfirmed checkout
type intent struct {
	sessionID string
	storeID   string
	shipping  ShippingDetails
	method    order.PaymentMethod
}

// Service orchestrates cart, session and ledger into order placement.
// Order creation is gated on explicit confirmation: a checkout that is
// never confirmed creates no order and leaves the cart untouched.
type Service struct {
	mu      sync.Mutex
	pending map[string]*intent // by checkout id
	busy    map[string]string  // session id -> in-flight checkout id

	carts    *cart.Manager
	sessions *session.Manager
	orders   *order.Service
	stores   catalog.StoreRepository
}

// NewService creates a new checkout service
func NewService(carts *cart.Manager, sessions *session.Manager, orders *order.Service, stores catalog.StoreRepository) *Service {
	return &Service{
		pending:  make(map[string]*intent),
		busy:     make(map[string]string),
		carts:    carts,
		sessions: sessions,
		orders:   orders,
		stores:   stores,
	}
}

// Begin validates the checkout preconditions, marks the session busy and
// returns the payload for the payment confirmation step. No collection is
// mutated here.
func (s *Service) Begin(sessionID string, shipping ShippingDetails, method order.PaymentMethod) (*PaymentRequest, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Customer == nil {
		return nil, ErrNotAuthenticated
	}

	totals := s.carts.Totals(sessionID)
	if totals.LineCount == 0 {
		return nil, ErrEmptyCart
	}

	store, ok := s.stores.Get(sess.ActiveStoreID)
	if !ok {
		return nil, fmt.Errorf("active store %q not found", sess.ActiveStoreID)
	}
	if method == order.PaymentMethodGateway && store.PaymentGatewayKey == "" {
		return nil, ErrGatewayNotConfigured
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, inFlight := s.busy[sessionID]; inFlight {
		return nil, ErrCheckoutInProgress
	}

	checkoutID := "chk" + uuid.NewString()
	s.pending[checkoutID] = &intent{
		sessionID: sessionID,
		storeID:   store.ID,
		shipping:  shipping,
		method:    method,
	}
	s.busy[sessionID] = checkoutID

	metrics.CheckoutsStartedTotal.Inc()

	return &PaymentRequest{
		CheckoutID:   checkoutID,
		Amount:       totals.Subtotal,
		Currency:     "USD",
		MerchantName: store.Name,
		GatewayKey:   store.PaymentGatewayKey,
		Prefill: Prefill{
			Name:  shipping.FirstName + " " + shipping.LastName,
			Email: shipping.Email,
			Phone: shipping.Phone,
		},
	}, nil
}

// Confirm finalizes a pending checkout: it derives the order from the
// current cart, appends it to the ledger, clears the cart and releases
// the busy guard. Both the cash-on-delivery and gateway branches land
// here. Returns the new order id.
func (s *Service) Confirm(checkoutID string) (string, error) {
	s.mu.Lock()
	in, ok := s.pending[checkoutID]
	if !ok {
		s.mu.Unlock()
		return "", ErrUnknownCheckout
	}
	delete(s.pending, checkoutID)
	delete(s.busy, in.sessionID)
	s.mu.Unlock()

	lines := s.carts.Items(in.sessionID)
	totals := s.carts.Totals(in.sessionID)

	items := make([]order.Item, len(lines))
	for i, line := range lines {
		items[i] = order.Item{Product: line.Product, Quantity: line.Quantity}
	}

	o := order.Order{
		CustomerName:    in.shipping.FirstName + " " + in.shipping.LastName,
		Email:           in.shipping.Email,
		StoreID:         in.storeID,
		Total:           totals.Subtotal,
		Status:          order.StatusPending,
		Date:            time.Now().Format("Jan 2, 2006"),
		Items:           items,
		ShippingAddress: fmt.Sprintf("%s, %s, %s", in.shipping.Address, in.shipping.City, in.shipping.Zip),
		PaymentMethod:   in.method,
	}

	placed, err := s.orders.Place(o)
	if err != nil {
		return "", fmt.Errorf("failed to place order: %w", err)
	}

	s.carts.Clear(in.sessionID)
	metrics.OrdersPlacedTotal.Inc()

	return placed.ID, nil
}

// Cancel aborts a pending checkout. The busy guard is released and
// neither the cart nor the ledger is touched.
func (s *Service) Cancel(checkoutID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	in, ok := s.pending[checkoutID]
	if !ok {
		return ErrUnknownCheckout
	}
	delete(s.pending, checkoutID)
	delete(s.busy, in.sessionID)

	metrics.CheckoutsAbandonedTotal.Inc()
	return nil
}
