// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// AuthHandler handles admin and customer authentication endpoints
type AuthHandler struct {
	sessions *session.Manager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// LoginRequest represents a credential payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// EnterStoreRequest selects the store an admin manages
type EnterStoreRequest struct {
	StoreID string `json:"store_id" binding:"required"`
}

// AdminLogin handles POST /auth/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.sessions.AdminLogin(sessionID, req.Email, req.Password); err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid credentials",
			})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Session expired",
		})
		return
	}

	sess, _ := h.sessions.Get(sessionID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Admin logged in successfully",
		"data":    sess,
	})
}

// AdminLogout handles POST /auth/admin/logout
func (h *AuthHandler) AdminLogout(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	if err := h.sessions.AdminLogout(sessionID); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Session expired",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Admin logged out successfully",
	})
}

// EnterStore handles POST /auth/admin/store
func (h *AuthHandler) EnterStore(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	var req EnterStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.sessions.EnterStore(sessionID, req.StoreID); err != nil {
		switch {
		case errors.Is(err, session.ErrUnknownStore):
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		case errors.Is(err, session.ErrNotAdmin):
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		default:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		}
		return
	}

	sess, _ := h.sessions.Get(sessionID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Store entered successfully",
		"data":    sess,
	})
}

// ExitStore handles DELETE /auth/admin/store
func (h *AuthHandler) ExitStore(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	if err := h.sessions.ExitStore(sessionID); err != nil {
		if errors.Is(err, session.ErrNotAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Store exited successfully",
	})
}

// CustomerLogin handles POST /auth/login
func (h *AuthHandler) CustomerLogin(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	u, err := h.sessions.CustomerLogin(sessionID, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid credentials",
			})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Session expired",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully",
		"data":    u,
	})
}

// CustomerSignup handles POST /auth/signup
func (h *AuthHandler) CustomerSignup(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	u, err := h.sessions.CustomerSignup(sessionID, &req)
	if err != nil {
		if errors.Is(err, user.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"data":    u,
	})
}

// CustomerLogout handles POST /auth/logout
func (h *AuthHandler) CustomerLogout(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	if err := h.sessions.CustomerLogout(sessionID); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Session retrieved successfully",
		"data":    sess,
	})
}
