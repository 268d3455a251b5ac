// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/ai"
)

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, sessions *session.Manager) {
	authHandler := handlers.NewAuthHandler(sessions)

	auth := rg.Group("/auth")
	{
		auth.GET("/me", authHandler.Me)

		// Admin track
		auth.POST("/admin/login", authHandler.AdminLogin)
		auth.POST("/admin/logout", authHandler.AdminLogout)

		adminOnly := auth.Group("")
		adminOnly.Use(middleware.RequireAdmin(sessions))
		{
			adminOnly.POST("/admin/store", authHandler.EnterStore)
			adminOnly.DELETE("/admin/store", authHandler.ExitStore)
		}

		// Customer track
		auth.POST("/login", authHandler.CustomerLogin)
		auth.POST("/signup", authHandler.CustomerSignup)
		auth.POST("/logout", authHandler.CustomerLogout)
	}
}

// SetupStorefrontRoutes sets up the public catalog routes
func SetupStorefrontRoutes(rg *gin.RouterGroup, catalogService *catalog.Service, sessions *session.Manager) {
	storefrontHandler := handlers.NewStorefrontHandler(catalogService, sessions)

	rg.GET("/stores", storefrontHandler.ListStores)
	rg.GET("/stores/:id", storefrontHandler.GetStore)
	rg.PUT("/session/store", storefrontHandler.SetActiveStore)

	rg.GET("/products", storefrontHandler.ListProducts)
	rg.GET("/products/:id", storefrontHandler.GetProduct)
	rg.GET("/categories", storefrontHandler.ListCategories)
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, carts *cart.Manager, catalogService *catalog.Service) {
	cartHandler := handlers.NewCartHandler(carts, catalogService)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PATCH("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}
}

// SetupCheckoutRoutes sets up checkout related routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, checkoutService *checkout.Service, sessions *session.Manager) {
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	checkoutGroup := rg.Group("/checkout")
	checkoutGroup.Use(middleware.RequireCustomer(sessions))
	{
		checkoutGroup.POST("", checkoutHandler.Begin)
		checkoutGroup.POST("/:id/confirm", checkoutHandler.Confirm)
		checkoutGroup.POST("/:id/cancel", checkoutHandler.Cancel)
	}
}

// SetupOrderRoutes sets up the public order tracking route
func SetupOrderRoutes(rg *gin.RouterGroup, orders *order.Service) {
	orderHandler := handlers.NewOrderHandler(orders)

	rg.GET("/orders/:id", orderHandler.Track)
}

// SetupAdminRoutes sets up the back-office routes
func SetupAdminRoutes(
	rg *gin.RouterGroup,
	catalogService *catalog.Service,
	orders *order.Service,
	users *user.Service,
	sessions *session.Manager,
	aiService *ai.Service,
) {
	adminHandler := handlers.NewAdminHandler(catalogService, orders, users, sessions, aiService)

	admin := rg.Group("/admin")
	admin.Use(middleware.RequireAdmin(sessions))
	{
		admin.GET("/stats", adminHandler.Stats)

		admin.GET("/products", adminHandler.ListProducts)
		admin.POST("/products", adminHandler.CreateProduct)
		admin.PUT("/products/:id", adminHandler.UpdateProduct)
		admin.DELETE("/products/:id", adminHandler.DeleteProduct)
		admin.POST("/products/description", adminHandler.GenerateDescription)

		admin.GET("/categories", adminHandler.ListCategories)
		admin.POST("/categories", adminHandler.CreateCategory)
		admin.PUT("/categories/:id", adminHandler.UpdateCategory)
		admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

		admin.PUT("/stores/:id", adminHandler.UpdateStore)

		admin.GET("/orders", adminHandler.ListOrders)
		admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)

		admin.GET("/users", adminHandler.ListUsers)
		admin.POST("/users", adminHandler.CreateUser)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
	}
}
