package handler

import (
	"github.com/labstack/echo/v4"
	httpHandler "github.com/piresc/fleettrack/services/location/handler/http"
)

// Middlewares holds the auth middleware each route group needs
type Middlewares struct {
	DriverAuth echo.MiddlewareFunc
	ServiceKey echo.MiddlewareFunc
	// RateLimit is optional and applied to telemetry after DriverAuth
	RateLimit echo.MiddlewareFunc
}

// RegisterRoutes registers all HTTP routes of the aggregator
func RegisterRoutes(e *echo.Echo, h *httpHandler.LocationHandler, mw Middlewares) {
	telemetryMW := []echo.MiddlewareFunc{mw.DriverAuth}
	if mw.RateLimit != nil {
		telemetryMW = append(telemetryMW, mw.RateLimit)
	}
	telemetry := e.Group("/telemetry", telemetryMW...)
	telemetry.POST("/update-location", h.UpdateLocation)

	drivers := e.Group("/drivers", mw.ServiceKey)
	drivers.GET("/live-tracking", h.GetLiveDrivers)
	drivers.GET("/nearby", h.GetNearbyDrivers)
	drivers.PUT("/:id/gps", h.SetGPSEnabled)
}
