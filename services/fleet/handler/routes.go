package handler

import (
	"github.com/labstack/echo/v4"
	httpHandler "github.com/piresc/fleettrack/services/fleet/handler/http"
)

// RegisterRoutes registers the fleet dashboard routes behind the operator key
func RegisterRoutes(e *echo.Echo, h *httpHandler.FleetHandler, operatorKey echo.MiddlewareFunc) {
	fleetGroup := e.Group("/fleet", operatorKey)
	fleetGroup.GET("/view", h.GetView)
	fleetGroup.GET("/stream", h.Stream)

	bookings := e.Group("/bookings", operatorKey)
	bookings.POST("/:id/assign", h.AssignDriver)
}
