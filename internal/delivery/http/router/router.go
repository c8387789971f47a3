// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	StoreHandler      *handler.StoreHandler
	ProductHandler    *handler.ProductHandler
	StorefrontHandler *handler.StorefrontHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	storeHandler      *handler.StoreHandler
	productHandler    *handler.ProductHandler
	storefrontHandler *handler.StorefrontHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		storeHandler:      params.StoreHandler,
		productHandler:    params.ProductHandler,
		storefrontHandler: params.StorefrontHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Store routes for the authenticated owner
	storeGroup := api.Group("/store")
	storeGroup.Use(r.authMiddleware.Authenticate)
	{
		storeGroup.GET("", r.storeHandler.GetStore)
		storeGroup.POST("", r.storeHandler.CreateStore)
		storeGroup.PUT("/publish", r.storeHandler.Publish)
		storeGroup.PUT("/maintenance", r.storeHandler.SetMaintenance)
		storeGroup.PUT("/template", r.storeHandler.UpdateTemplate)
	}

	// Product routes that require authentication
	productGroup := api.Group("/products")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.POST("", r.productHandler.CreateProduct)
		productGroup.DELETE("/:productId", r.productHandler.DeleteProduct)
	}

	// Public storefront lookup, no authentication
	api.GET("/tiendas/:slug", r.storefrontHandler.GetBySlug)
}
