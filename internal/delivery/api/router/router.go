// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	PaymentHandler  *handler.PaymentHandler
	CityHandler     *handler.CityHandler
	PromoHandler    *handler.PromoHandler
	ScheduleHandler *handler.ScheduleHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	paymentHandler  *handler.PaymentHandler
	cityHandler     *handler.CityHandler
	promoHandler    *handler.PromoHandler
	scheduleHandler *handler.ScheduleHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		productHandler:  params.ProductHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		paymentHandler:  params.PaymentHandler,
		cityHandler:     params.CityHandler,
		promoHandler:    params.PromoHandler,
		scheduleHandler: params.ScheduleHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authenticated := r.authMiddleware.Authenticate(middleware.HeaderOrCookie)
	staff := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleManager)
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google", r.authHandler.GoogleLogin)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	api.GET("/users/me", r.authHandler.Me, authenticated)

	products := api.Group("/products")
	{
		products.GET("", r.productHandler.List)
		products.GET("/slug/:slug", r.productHandler.GetBySlug)
		products.GET("/:id", r.productHandler.Get)
		products.POST("", r.productHandler.Create, authenticated, staff)
		products.PUT("", r.productHandler.Update, authenticated, staff)
		products.PATCH("/:id/availability", r.productHandler.SetAvailability, authenticated, staff)
		products.DELETE("/:id", r.productHandler.Delete, authenticated, adminOnly)
	}

	cart := api.Group("/cart", authenticated)
	{
		cart.GET("", r.cartHandler.Get)
		cart.DELETE("", r.cartHandler.Clear)
		cart.POST("/items", r.cartHandler.AddItem)
		cart.PATCH("/items/:productId", r.cartHandler.UpdateItem)
		cart.DELETE("/items/:productId", r.cartHandler.RemoveItem)
	}

	orders := api.Group("/orders", authenticated)
	{
		orders.POST("", r.orderHandler.Create)
		orders.GET("", r.orderHandler.List)
		orders.GET("/:id", r.orderHandler.Get)
		orders.GET("/:id/qr", r.orderHandler.PickupQR)
	}

	payments := api.Group("/payments")
	{
		payments.POST("/myfatoorah", r.paymentHandler.Create, authenticated)
		payments.POST("/webhook", r.paymentHandler.Webhook)
		payments.GET("/status/:orderId", r.paymentHandler.Status)
		payments.GET("/callback", r.paymentHandler.Callback)
	}

	cities := api.Group("/cities")
	{
		cities.GET("", r.cityHandler.List)
		cities.GET("/:id", r.cityHandler.Get)
		cities.GET("/:city/areas/:area/price", r.cityHandler.ShippingPrice)
		cities.POST("", r.cityHandler.Create, authenticated, staff)
		cities.PUT("/:id", r.cityHandler.Update, authenticated, staff)
		cities.DELETE("/:id", r.cityHandler.Delete, authenticated, staff)
	}

	promos := api.Group("/promos")
	{
		promos.POST("/validate", r.promoHandler.Validate)
		promos.GET("", r.promoHandler.List, authenticated, staff)
		promos.POST("", r.promoHandler.Create, authenticated, staff)
		promos.PUT("/:id", r.promoHandler.Update, authenticated, staff)
		promos.DELETE("/:id", r.promoHandler.Delete, authenticated, staff)
	}

	schedule := api.Group("/schedule")
	{
		schedule.GET("/closed", r.scheduleHandler.ListClosed)
		schedule.GET("/status", r.scheduleHandler.Status)
		schedule.POST("/closed", r.scheduleHandler.CloseDay, authenticated, staff)
	}

	admin := api.Group("/admin", authenticated)
	{
		admin.PATCH("/users/:id/role", r.authHandler.ChangeRole, adminOnly)
		admin.GET("/products/export", r.productHandler.Export, staff)
		admin.GET("/orders", r.orderHandler.ListAll, staff)
		admin.PATCH("/orders/:id/status", r.orderHandler.UpdateStatus, staff)
		admin.GET("/orders/feed", r.orderHandler.Feed, staff)
	}
}
