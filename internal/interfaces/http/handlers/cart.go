// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	carts   *cart.Manager
	catalog *catalog.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Manager, catalogService *catalog.Service) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: catalogService,
	}
}

// AddToCartRequest represents an add-to-cart payload
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// UpdateCartItemRequest adjusts a line's quantity by a signed delta
type UpdateCartItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// cartResponse is the envelope every cart mutation returns so dependent
// views (badge, mini-cart, checkout summary) recompute from one snapshot
type cartResponse struct {
	Items  []cart.Line `json:"items"`
	Totals cart.Totals `json:"totals"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.snapshot(sessionID),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalog.Product(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	h.carts.Add(sessionID, product)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    h.snapshot(sessionID),
	})
}

// UpdateCartItem handles PATCH /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.carts.SetQuantityDelta(sessionID, c.Param("id"), req.Delta)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    h.snapshot(sessionID),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	h.carts.Remove(sessionID, c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    h.snapshot(sessionID),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	h.carts.Clear(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    h.snapshot(sessionID),
	})
}

func (h *CartHandler) snapshot(sessionID string) cartResponse {
	return cartResponse{
		Items:  h.carts.Items(sessionID),
		Totals: h.carts.Totals(sessionID),
	}
}
