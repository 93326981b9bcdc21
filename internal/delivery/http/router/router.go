// Package router wires the HTTP handlers to their routes.
package router

import (
	"storerating/config"
	"storerating/internal/delivery/http/middleware"
	"storerating/internal/delivery/http/router/handler"
	"storerating/internal/domain/entity"
	"storerating/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultMetricsPath = "/metrics"

// RouterParams holds dependencies for the router, injected by Fx.
type RouterParams struct {
	fx.In

	Config              *config.Config
	Metrics             *metrics.Metrics
	AuthHandler         *handler.AuthHandler
	AdminHandler        *handler.AdminHandler
	StoreOwnerHandler   *handler.StoreOwnerHandler
	UserHandler         *handler.UserHandler
	PasswordHandler     *handler.PasswordHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// Router holds all the handlers that need to be registered.
type Router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *Router {
	return &Router{params: params}
}

// RegisterRoutes sets up all the routes of the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	authenticate := p.AuthMiddleware.Authenticate

	if p.Config.Metrics == nil || p.Config.Metrics.Enabled {
		metricsPath := defaultMetricsPath
		if p.Config.Metrics != nil && p.Config.Metrics.Path != "" {
			metricsPath = p.Config.Metrics.Path
		}
		e.GET(metricsPath, echo.WrapHandler(p.Metrics.Handler()))
	}

	api := e.Group("/api")
	api.GET("/health", handler.HealthCheck)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", p.AuthHandler.Register, p.RateLimitMiddleware.Limit)
		authGroup.POST("/login", p.AuthHandler.Login, p.RateLimitMiddleware.Limit)
		authGroup.GET("/me", p.AuthHandler.Me, authenticate)
	}

	adminGroup := api.Group("/admin", authenticate, p.AuthMiddleware.RequireRole(entity.RoleSystemAdministrator))
	{
		adminGroup.GET("/dashboard", p.AdminHandler.Dashboard)
		adminGroup.GET("/stores", p.AdminHandler.ListStores)
		adminGroup.POST("/stores", p.AdminHandler.CreateStore)
		adminGroup.DELETE("/stores/:id", p.AdminHandler.DeleteStore)
		adminGroup.GET("/users", p.AdminHandler.ListUsers)
		adminGroup.POST("/users", p.AdminHandler.CreateUser)
		adminGroup.GET("/users/:id", p.AdminHandler.GetUser)
		adminGroup.DELETE("/users/:id", p.AdminHandler.DeleteUser)
	}

	userGroup := api.Group("/user", authenticate, p.AuthMiddleware.RequireRole(entity.RoleNormalUser))
	{
		userGroup.GET("/stores", p.UserHandler.ListStores)
		userGroup.GET("/stores/:id", p.UserHandler.GetStore)
		userGroup.POST("/ratings", p.UserHandler.SubmitRating)
		userGroup.PUT("/ratings/:id", p.UserHandler.UpdateRating)
		userGroup.PUT("/password", p.PasswordHandler.UpdatePassword)
	}

	ownerGroup := api.Group("/store-owner", authenticate, p.AuthMiddleware.RequireRole(entity.RoleStoreOwner))
	{
		ownerGroup.GET("/dashboard", p.StoreOwnerHandler.Dashboard)
		ownerGroup.GET("/qrcode", p.StoreOwnerHandler.QRCode)
		ownerGroup.PUT("/password", p.PasswordHandler.UpdatePassword)
	}
}
