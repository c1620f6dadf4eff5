// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"proptrust/internal/delivery/api/middleware"
	"proptrust/internal/delivery/api/router/handler"
	"proptrust/internal/delivery/health"
	"proptrust/internal/domain/entity"
	"proptrust/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ListingHandler *handler.ListingHandler
	DeviceHandler  *handler.DeviceHandler
	HealthHandler  *health.Handler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	listingHandler *handler.ListingHandler
	deviceHandler  *handler.DeviceHandler
	healthHandler  *health.Handler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		listingHandler: params.ListingHandler,
		deviceHandler:  params.DeviceHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Capability checks happen in the pipeline; the router only authenticates.
	listingsGroup := apiV1.Group("/listings")
	{
		listingsGroup.POST("", r.listingHandler.SubmitListing)
		listingsGroup.GET("/:id", r.listingHandler.GetListing)
		listingsGroup.POST("/:id/submit", r.listingHandler.SubmitDraft)
		listingsGroup.POST("/:id/unlist", r.listingHandler.UnlistListing)
		listingsGroup.GET("/:id/duplicates", r.listingHandler.CheckDuplicates)
		listingsGroup.POST("/:id/ml-verdict", r.listingHandler.RecordMLVerdict)
		listingsGroup.POST("/:id/vetting-decision", r.listingHandler.RecordVettingDecision)
		listingsGroup.POST("/:id/duplicate-resolution", r.listingHandler.ResolveDuplicate)
		listingsGroup.POST("/:id/duplicate-flag", r.listingHandler.FlagDuplicate)
		listingsGroup.GET("/:id/audit-trail", r.listingHandler.ListAuditTrail)
	}

	// Device management routes (owners receive pipeline notifications)
	devicesGroup := apiV1.Group("/devices")
	devicesGroup.Use(r.authMiddleware.RequireRole(entity.RoleOwner))
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetOwnerDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
