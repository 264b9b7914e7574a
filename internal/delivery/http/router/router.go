// Package router contains routing setup for the HTTP delivery.
package router

import (
	"ecomshop/config"
	"ecomshop/internal/delivery/http/middleware"
	"ecomshop/internal/delivery/http/router/handler"
	"ecomshop/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	MeHandler       *handler.MeHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	AddressHandler  *handler.AddressHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	meHandler       *handler.MeHandler
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	addressHandler  *handler.AddressHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		meHandler:       params.MeHandler,
		productHandler:  params.ProductHandler,
		cartHandler:     params.CartHandler,
		addressHandler:  params.AddressHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Authenticate runs on every route and never rejects; the Authorize guards on
// the protected groups decide access.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.Use(r.authMiddleware.Authenticate)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/signin", r.authHandler.Signin)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.POST("/confirm-reset-password", r.authHandler.ConfirmResetPassword)
	}

	// Session routes. GET /me stays open so the storefront can probe the
	// login state; sign-out checks the session itself.
	meGroup := e.Group("/me")
	{
		meGroup.GET("", r.meHandler.Me)
		meGroup.POST("/signout", r.meHandler.SignOut)
	}

	// Public catalog routes
	productsGroup := e.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:productId", r.productHandler.GetProduct)
	}

	clientOnly := r.authMiddleware.Authorize(entity.RoleClient)

	// Cart routes
	cartGroup := e.Group("/cart", clientOnly)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("", r.cartHandler.AddItem)
		cartGroup.POST("/:cartItemId", r.cartHandler.AdjustItem)
		cartGroup.DELETE("/:cartItemId", r.cartHandler.RemoveItem)
	}

	// Shipping address routes
	addressesGroup := e.Group("/addresses", clientOnly)
	{
		addressesGroup.GET("", r.addressHandler.ListAddresses)
		addressesGroup.GET("/:addressId", r.addressHandler.GetAddress)
		addressesGroup.POST("", r.addressHandler.CreateAddress)
		addressesGroup.PUT("/:addressId", r.addressHandler.UpdateAddress)
		addressesGroup.DELETE("/:addressId", r.addressHandler.DeleteAddress)
	}

	// Checkout routes
	checkoutGroup := e.Group("/checkout", clientOnly)
	{
		checkoutGroup.POST("", r.checkoutHandler.Checkout)
		checkoutGroup.POST("/select-address", r.checkoutHandler.SelectAddress)
		checkoutGroup.GET("/cards", r.checkoutHandler.ListCards)
		checkoutGroup.POST("/set-default-card", r.checkoutHandler.SetDefaultCard)
		checkoutGroup.POST("/remove-card", r.checkoutHandler.RemoveCard)
	}

	// Order routes
	ordersGroup := e.Group("/orders", clientOnly)
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:orderId", r.orderHandler.GetOrder)
	}

	// Admin routes
	adminGroup := e.Group("/admin", r.authMiddleware.Authorize(entity.RoleAdmin, entity.RoleSuperAdmin))
	{
		adminGroup.POST("/products", r.adminHandler.CreateProduct)
		adminGroup.PUT("/products/:productId", r.adminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:productId", r.adminHandler.DeleteProduct)

		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.GET("/orders/:orderId", r.adminHandler.GetOrder)
		adminGroup.PUT("/orders/:orderId", r.adminHandler.UpdateOrderStatus)

		adminGroup.GET("/users", r.adminHandler.ListUsers)
	}

	// Account management is reserved for super admins
	superAdminGroup := e.Group("/admin/users", r.authMiddleware.Authorize(entity.RoleSuperAdmin))
	{
		superAdminGroup.GET("/:userId", r.adminHandler.GetUser)
		superAdminGroup.PUT("/:userId", r.adminHandler.UpdateUserRole)
		superAdminGroup.DELETE("/:userId", r.adminHandler.DeleteUser)
	}
}
