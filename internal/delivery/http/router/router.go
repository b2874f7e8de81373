// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quorum/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler *handler.UserHandler
	AuthHandler *handler.AuthHandler
	CityHandler *handler.CityHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler *handler.UserHandler
	authHandler *handler.AuthHandler
	cityHandler *handler.CityHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler: params.UserHandler,
		authHandler: params.AuthHandler,
		cityHandler: params.CityHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes drive the one-time token flow.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.userHandler.Signup)
		authGroup.POST("/recovery", r.authHandler.RequestRecovery)
		authGroup.POST("/verify", r.authHandler.VerifyToken)
	}

	// User routes
	userGroup := e.Group("/users")
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.GET("/:id/account", r.userHandler.GetAccount)
		userGroup.PATCH("/:id", r.userHandler.UpdateAccount)
		userGroup.DELETE("/:id", r.userHandler.DeleteAccount)
		userGroup.PUT("/:id/password", r.userHandler.UpdatePassword)
		userGroup.DELETE("/:id/token", r.authHandler.RevokeToken)
		userGroup.GET("/:id/votes", r.userHandler.ListVotes)
	}

	// City routes
	e.GET("/cities", r.cityHandler.ListCities)
}
