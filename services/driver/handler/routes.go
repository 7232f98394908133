package handler

import (
	"github.com/gin-gonic/gin"
	httpHandler "github.com/piresc/fleettrack/services/driver/handler/http"
)

// RegisterRoutes registers the driver agent control API
func RegisterRoutes(r gin.IRouter, h *httpHandler.TripHandler) {
	tripGroup := r.Group("/trip")
	tripGroup.GET("", h.GetTrip)
	tripGroup.POST("/vehicle", h.SelectVehicle)
	tripGroup.POST("/assign", h.AssignRoute)
	tripGroup.POST("/start", h.StartTrip)
	tripGroup.POST("/break", h.TakeBreak)
	tripGroup.POST("/resume", h.Resume)
	tripGroup.POST("/end", h.EndTrip)

	tracking := r.Group("/tracking")
	tracking.GET("", h.GetTracking)
	tracking.POST("/report", h.ReportNow)
	tracking.POST("/enable", h.EnableTracking)
	tracking.POST("/disable", h.DisableTracking)
}
