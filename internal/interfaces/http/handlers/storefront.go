// internal/interfaces/http/handlers/storefront.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// StorefrontHandler handles the public store browsing endpoints
type StorefrontHandler struct {
	catalog  *catalog.Service
	sessions *session.Manager
}

// NewStorefrontHandler creates a new storefront handler
func NewStorefrontHandler(catalogService *catalog.Service, sessions *session.Manager) *StorefrontHandler {
	return &StorefrontHandler{
		catalog:  catalogService,
		sessions: sessions,
	}
}

// SetActiveStoreRequest switches the storefront being browsed
type SetActiveStoreRequest struct {
	StoreID string `json:"store_id" binding:"required"`
}

// ListStores handles GET /stores
func (h *StorefrontHandler) ListStores(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Stores retrieved successfully",
		"data":    h.catalog.Stores(),
	})
}

// GetStore handles GET /stores/:id
func (h *StorefrontHandler) GetStore(c *gin.Context) {
	store, err := h.catalog.Store(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Store retrieved successfully",
		"data":    store,
	})
}

// SetActiveStore handles PUT /session/store. Browsing a different store
// does not clear the cart.
func (h *StorefrontHandler) SetActiveStore(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	var req SetActiveStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.sessions.SetActiveStore(sessionID, req.StoreID); err != nil {
		if errors.Is(err, session.ErrUnknownStore) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		return
	}

	sess, _ := h.sessions.Get(sessionID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Active store updated successfully",
		"data":    sess,
	})
}

// ListProducts handles GET /products?store_id=&q=
func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	storeID := c.Query("store_id")
	query := c.Query("q")

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    h.catalog.SearchProducts(storeID, query),
	})
}

// GetProduct handles GET /products/:id
func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.Product(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// ListCategories handles GET /categories?store_id=
func (h *StorefrontHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    h.catalog.Categories(c.Query("store_id")),
	})
}
