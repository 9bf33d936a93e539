// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"routehub/internal/delivery/http/middleware"
	"routehub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RouteHandler   *handler.RouteHandler
	CreatorHandler *handler.CreatorHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	routeHandler   *handler.RouteHandler
	creatorHandler *handler.CreatorHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		routeHandler:   params.RouteHandler,
		creatorHandler: params.CreatorHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.HealthCheck)

	// Public route reads
	routeGroup := e.Group("/routes")
	{
		routeGroup.GET("", r.routeHandler.GetRoutes)
		routeGroup.GET("/nearby", r.routeHandler.GetNearbyRoutes)
		routeGroup.GET("/rating", r.routeHandler.GetRoutesByRating)
		routeGroup.GET("/creator/:creatorId", r.routeHandler.GetRoutesByCreator)
		routeGroup.GET("/:id", r.routeHandler.GetRouteByID)
		routeGroup.GET("/:id/directions", r.routeHandler.GetDirections)
	}

	// Route writes require authentication
	{
		routeGroup.POST("", r.routeHandler.CreateRoute, r.authMiddleware.Authenticate)
		routeGroup.PATCH("/:id", r.routeHandler.UpdateRoute, r.authMiddleware.Authenticate)
		routeGroup.DELETE("/:id", r.routeHandler.DeleteRoute, r.authMiddleware.Authenticate)
		routeGroup.POST("/:id/complete", r.routeHandler.CompleteRoute, r.authMiddleware.Authenticate)
	}

	// Public creator identities
	e.GET("/creators/:creatorId", r.creatorHandler.GetCreatorSummary)
}
