// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APIPrefix is the path every REST route is mounted under.
const APIPrefix = "/api/v1"

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	StoreHandler   *handler.StoreHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	UploadHandler  *handler.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// Router holds all the handlers that need to be registered.
type Router struct {
	auth     *handler.AuthHandler
	stores   *handler.StoreHandler
	products *handler.ProductHandler
	orders   *handler.OrderHandler
	uploads  *handler.UploadHandler
	authMw   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *Router {
	return &Router{
		auth:     params.AuthHandler,
		stores:   params.StoreHandler,
		products: params.ProductHandler,
		orders:   params.OrderHandler,
		uploads:  params.UploadHandler,
		authMw:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/uploads/*", r.uploads.Get)

	api := e.Group(APIPrefix)
	authenticated := r.authMw.Authenticate

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.auth.Login)
		authGroup.POST("/register", r.auth.Register)
	}

	api.PATCH("/users/:id", r.auth.UpdateProfile, authenticated)

	storeGroup := api.Group("/stores")
	{
		storeGroup.GET("", r.stores.List)
		storeGroup.GET("/me", r.stores.Mine, authenticated)
		storeGroup.GET("/:store", r.stores.BySlug)
		storeGroup.POST("", r.stores.Create, authenticated)
		storeGroup.PATCH("/:store", r.stores.Update, authenticated)
		storeGroup.DELETE("/:store", r.stores.Delete, authenticated)
	}

	productGroup := api.Group("/products")
	{
		productGroup.GET("/global", r.products.Global)
		productGroup.GET("/store/:store", r.products.ByStore)
		productGroup.POST("/store/:store", r.products.Create, authenticated)
		productGroup.GET("/:product", r.products.Get)
		productGroup.PATCH("/:product", r.products.Update, authenticated)
		productGroup.DELETE("/:product", r.products.Delete, authenticated)
	}

	orderGroup := api.Group("/orders", authenticated)
	{
		orderGroup.GET("/client/me", r.orders.ClientOrders)
		orderGroup.POST("", r.orders.Create)
	}

	listGroup := api.Group("/shopping-list", authenticated)
	{
		listGroup.GET("", r.orders.ShoppingList)
		listGroup.PUT("", r.orders.SaveShoppingList)
	}
}
