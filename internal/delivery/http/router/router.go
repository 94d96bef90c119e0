// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mazraa/internal/delivery/http/middleware"
	"mazraa/internal/delivery/http/router/handler"
	"mazraa/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ProfileHandler      *handler.ProfileHandler
	ProductHandler      *handler.ProductHandler
	OrderHandler        *handler.OrderHandler
	NotificationHandler *handler.NotificationHandler
	DiagnosisHandler    *handler.DiagnosisHandler
	ChatHandler         *handler.ChatHandler
	ContentHandler      *handler.ContentHandler
	NavigationHandler   *handler.NavigationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes; login covers the guest sentinel username too.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/logout", p.AuthHandler.Logout)
	}

	// Everything below requires a session token. Guest sessions are tokens
	// too; per-operation authorization happens in the use cases.
	authed := e.Group("", p.AuthMiddleware.Authenticate)

	profileGroup := authed.Group("/profile")
	{
		profileGroup.GET("", p.ProfileHandler.Get)
		profileGroup.PUT("", p.ProfileHandler.Update)
		profileGroup.PUT("/password", p.ProfileHandler.UpdatePassword)
		profileGroup.DELETE("", p.ProfileHandler.Delete)
	}

	// Public storefront: approved products only.
	authed.GET("/products", p.ProductHandler.Storefront)

	merchantGroup := authed.Group("/merchant", p.AuthMiddleware.RequireRole(entity.RoleMerchant))
	{
		merchantGroup.GET("/products", p.ProductHandler.Dashboard)
		merchantGroup.POST("/products", p.ProductHandler.Create)
		merchantGroup.PUT("/products/:id", p.ProductHandler.Update)
		merchantGroup.DELETE("/products/:id", p.ProductHandler.Delete)
		merchantGroup.GET("/orders", p.OrderHandler.Incoming)
	}

	authed.POST("/orders", p.OrderHandler.Place)
	authed.GET("/orders", p.OrderHandler.Mine)

	notificationGroup := authed.Group("/notifications")
	{
		notificationGroup.GET("", p.NotificationHandler.Feed)
		notificationGroup.POST("/read-all", p.NotificationHandler.MarkAllRead)
		notificationGroup.DELETE("", p.NotificationHandler.Clear)
	}

	diagnosisGroup := authed.Group("/diagnosis")
	{
		diagnosisGroup.POST("/analyze", p.DiagnosisHandler.Analyze)
		diagnosisGroup.POST("/history", p.DiagnosisHandler.Save)
		diagnosisGroup.GET("/history", p.DiagnosisHandler.History)
	}

	authed.POST("/chat", p.ChatHandler.Chat)

	contentGroup := authed.Group("/content")
	{
		contentGroup.GET("/crops", p.ContentHandler.Crops)
		contentGroup.GET("/crops/:id", p.ContentHandler.CropByID)
		contentGroup.GET("/tips", p.ContentHandler.Tips)
		contentGroup.GET("/diseases", p.ContentHandler.Diseases)
		contentGroup.GET("/slides", p.ContentHandler.Slides)
	}

	navigationGroup := authed.Group("/navigation")
	{
		navigationGroup.GET("/resolve", p.NavigationHandler.Resolve)
		navigationGroup.GET("/back", p.NavigationHandler.Back)
	}
}
