// internal/interfaces/http/handlers/admin.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/ai"
)

// AdminHandler handles the back-office endpoints. Listing and creation
// are scoped to the store the admin has entered; with no store selected,
// listings cover all stores and creation is rejected.
type AdminHandler struct {
	catalog  *catalog.Service
	orders   *order.Service
	users    *user.Service
	sessions *session.Manager
	ai       *ai.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(catalogService *catalog.Service, orders *order.Service, users *user.Service, sessions *session.Manager, aiService *ai.Service) *AdminHandler {
	return &AdminHandler{
		catalog:  catalogService,
		orders:   orders,
		users:    users,
		sessions: sessions,
		ai:       aiService,
	}
}

// CreateCategoryRequest represents a category create/update payload
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image"`
}

// UpdateOrderStatusRequest sets an order's status
type UpdateOrderStatusRequest struct {
	Status order.Status `json:"status" binding:"required"`
}

// GenerateDescriptionRequest represents a description assist payload
type GenerateDescriptionRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Keywords string `json:"keywords"`
}

// adminStoreID returns the store the admin has entered, empty when none
func (h *AdminHandler) adminStoreID(c *gin.Context) string {
	sessionID, _ := middleware.GetSessionID(c)
	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		return ""
	}
	return sess.AdminStoreID
}

// requireStore rejects scoped mutations when no store has been entered
func (h *AdminHandler) requireStore(c *gin.Context) (string, bool) {
	storeID := h.adminStoreID(c)
	if storeID == "" {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Select a store before managing its catalog",
		})
		return "", false
	}
	return storeID, true
}

// --- products ---

// ListProducts handles GET /admin/products
func (h *AdminHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    h.catalog.Products(h.adminStoreID(c)),
	})
}

// CreateProduct handles POST /admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	storeID, ok := h.requireStore(c)
	if !ok {
		return
	}

	var req catalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalog.CreateProduct(storeID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"data":    product,
	})
}

// UpdateProduct handles PUT /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	var product catalog.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}
	product.ID = c.Param("id")

	if err := h.catalog.UpdateProduct(product); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, catalog.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"data":    product,
	})
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalog.DeleteProduct(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// GenerateDescription handles POST /admin/products/description
func (h *AdminHandler) GenerateDescription(c *gin.Context) {
	var req GenerateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	description := h.ai.GenerateDescription(c.Request.Context(), req.Name, req.Category, req.Keywords)

	c.JSON(http.StatusOK, gin.H{
		"message": "Description generated successfully",
		"data":    gin.H{"description": description},
	})
}

// --- categories ---

// ListCategories handles GET /admin/categories
func (h *AdminHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    h.catalog.Categories(h.adminStoreID(c)),
	})
}

// CreateCategory handles POST /admin/categories
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	storeID, ok := h.requireStore(c)
	if !ok {
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	category, err := h.catalog.CreateCategory(storeID, req.Name, req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Category created successfully",
		"data":    category,
	})
}

// UpdateCategory handles PUT /admin/categories/:id
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	var category catalog.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}
	category.ID = c.Param("id")

	if err := h.catalog.UpdateCategory(category); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, catalog.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category updated successfully",
		"data":    category,
	})
}

// DeleteCategory handles DELETE /admin/categories/:id
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.catalog.DeleteCategory(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category deleted successfully",
	})
}

// --- stores ---

// UpdateStore handles PUT /admin/stores/:id, a whole-record replace
func (h *AdminHandler) UpdateStore(c *gin.Context) {
	var store catalog.Store
	if err := c.ShouldBindJSON(&store); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}
	store.ID = c.Param("id")

	if err := h.catalog.UpdateStoreSettings(store); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, catalog.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Store settings updated successfully",
		"data":    store,
	})
}

// --- orders ---

// ListOrders handles GET /admin/orders, most-recent-first
func (h *AdminHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    h.orders.List(h.adminStoreID(c)),
	})
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	o, err := h.orders.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, order.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"data":    o,
	})
}

// Stats handles GET /admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Stats retrieved successfully",
		"data":    h.orders.Stats(h.adminStoreID(c)),
	})
}

// --- users ---

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Users retrieved successfully",
		"data":    h.users.Users(),
	})
}

// CreateUser handles POST /admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	u, err := h.users.Add(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"data":    u,
	})
}

// DeleteUser handles DELETE /admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.users.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}
