// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CheckoutHandler handles the two-phase checkout endpoints
type CheckoutHandler struct {
	checkout *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkoutService}
}

// BeginCheckoutRequest represents the checkout form submission
type BeginCheckoutRequest struct {
	Shipping      checkout.ShippingDetails `json:"shipping" binding:"required"`
	PaymentMethod order.PaymentMethod      `json:"payment_method" binding:"required"`
}

// Begin handles POST /checkout. Nothing is mutated here; the order is
// only created once the payment confirmation arrives.
func (h *CheckoutHandler) Begin(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	var req BeginCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if req.PaymentMethod != order.PaymentMethodCOD && req.PaymentMethod != order.PaymentMethodGateway {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment method"})
		return
	}

	payment, err := h.checkout.Begin(sessionID, req.Shipping, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Customer authentication required"})
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		case errors.Is(err, checkout.ErrCheckoutInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": "A checkout is already in progress"})
		case errors.Is(err, checkout.ErrGatewayNotConfigured):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment gateway not configured for this store"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to begin checkout"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout started successfully",
		"data":    payment,
	})
}

// Confirm handles POST /checkout/:id/confirm. Both payment branches land
// here: cash on delivery immediately, the gateway after its success
// callback.
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	orderID, err := h.checkout.Confirm(c.Param("id"))
	if err != nil {
		if errors.Is(err, checkout.ErrUnknownCheckout) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Checkout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    gin.H{"order_id": orderID},
	})
}

// Cancel handles POST /checkout/:id/cancel. Dismissing the payment dialog
// releases the in-flight guard without touching the cart or the ledger.
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	if err := h.checkout.Cancel(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checkout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout cancelled",
	})
}
