// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pulse/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FacilityHandler *handler.FacilityHandler
	PulseHandler    *handler.PulseHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	facilityHandler *handler.FacilityHandler
	pulseHandler    *handler.PulseHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		facilityHandler: params.FacilityHandler,
		pulseHandler:    params.PulseHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.facilityHandler.HealthCheck)

	facilityGroup := e.Group("/api/facilities")
	{
		facilityGroup.GET("", r.facilityHandler.DiscoverFacilities)
		facilityGroup.POST("", r.facilityHandler.CreateFacility)
		facilityGroup.GET("/:id", r.facilityHandler.GetFacility)
		facilityGroup.GET("/:id/reviews", r.facilityHandler.ListReviews)

		// Consensus write path
		facilityGroup.POST("/:id/reviews", r.pulseHandler.SubmitReview)
		facilityGroup.PUT("/:id/wait-time", r.pulseHandler.UpdateWaitTime)
	}
}
