package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/internal/utils"
	"github.com/piresc/fleettrack/services/driver"
	"github.com/piresc/fleettrack/services/driver/reporter"
	"github.com/piresc/fleettrack/services/driver/trip"
)

// TripHandler exposes the driver session over a local control API
type TripHandler struct {
	tripUC     driver.TripUC
	trackingUC driver.TrackingUC
	now        models.Clock
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripUC driver.TripUC, trackingUC driver.TrackingUC) *TripHandler {
	return &TripHandler{
		tripUC:     tripUC,
		trackingUC: trackingUC,
		now:        models.Now,
	}
}

// TripView is the body of GET /trip
type TripView struct {
	Trip            models.TripState      `json:"trip"`
	Display         models.TripStatusView `json:"display"`
	DurationSeconds int64                 `json:"durationSeconds"`
}

// SelectVehicleRequest is the body of POST /trip/vehicle
type SelectVehicleRequest struct {
	VehicleID string `json:"vehicleId" binding:"required"`
}

// GetTrip returns the session state with the authoritative display status
func (h *TripHandler) GetTrip(c *gin.Context) {
	ok(c, "Trip retrieved", h.view(c))
}

// SelectVehicle picks the vehicle for the next trip
func (h *TripHandler) SelectVehicle(c *gin.Context) {
	var req SelectVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "vehicleId is required")
		return
	}
	if err := h.tripUC.SelectVehicle(req.VehicleID); err != nil {
		h.tripError(c, err)
		return
	}
	ok(c, "Vehicle selected", h.tripUC.State())
}

// AssignRoute applies a route assignment pushed by a dispatcher
func (h *TripHandler) AssignRoute(c *gin.Context) {
	var route models.Route
	if err := c.ShouldBindJSON(&route); err != nil {
		fail(c, http.StatusBadRequest, "Invalid route body")
		return
	}
	if err := h.tripUC.RouteAssigned(route); err != nil {
		h.tripError(c, err)
		return
	}
	ok(c, "Route assigned", h.tripUC.State())
}

// StartTrip starts the assigned trip
func (h *TripHandler) StartTrip(c *gin.Context) {
	state, err := h.tripUC.StartTrip(c.Request.Context())
	if err != nil {
		h.tripError(c, err)
		return
	}
	ok(c, "Trip started", state)
}

// TakeBreak pauses the active trip
func (h *TripHandler) TakeBreak(c *gin.Context) {
	state, err := h.tripUC.TakeBreak()
	if err != nil {
		h.tripError(c, err)
		return
	}
	ok(c, "Break started", state)
}

// Resume continues the trip after a break
func (h *TripHandler) Resume(c *gin.Context) {
	state, err := h.tripUC.Resume()
	if err != nil {
		h.tripError(c, err)
		return
	}
	ok(c, "Trip resumed", state)
}

// EndTrip completes the trip
func (h *TripHandler) EndTrip(c *gin.Context) {
	state, err := h.tripUC.EndTrip(c.Request.Context())
	if err != nil {
		h.tripError(c, err)
		return
	}
	ok(c, "Trip completed", state)
}

// GetTracking returns the reporter state
func (h *TripHandler) GetTracking(c *gin.Context) {
	ok(c, "Tracking state retrieved", h.trackingUC.State())
}

// ReportNow sends one position immediately
func (h *TripHandler) ReportNow(c *gin.Context) {
	if err := h.trackingUC.ReportNow(c.Request.Context()); err != nil {
		if errors.Is(err, reporter.ErrNotTracking) {
			fail(c, http.StatusConflict, "Tracking is not active, start a trip first")
			return
		}
		_ = c.Error(err)
		fail(c, http.StatusBadGateway, h.trackingUC.State().LastError)
		return
	}
	ok(c, "Location sent", h.trackingUC.State())
}

// EnableTracking switches reporting on for the selected vehicle outside of a trip
func (h *TripHandler) EnableTracking(c *gin.Context) {
	if err := h.tripUC.EnableTracking(); err != nil {
		switch {
		case errors.Is(err, trip.ErrMissingVehicle):
			fail(c, http.StatusConflict, "Please select a vehicle first")
		case errors.Is(err, reporter.ErrDisabled):
			fail(c, http.StatusConflict, err.Error())
		default:
			_ = c.Error(err)
			fail(c, http.StatusInternalServerError, "Failed to enable tracking")
		}
		return
	}
	ok(c, "Tracking enabled", h.trackingUC.State())
}

// DisableTracking switches reporting off; the trip is left as it is
func (h *TripHandler) DisableTracking(c *gin.Context) {
	h.tripUC.DisableTracking()
	ok(c, "Tracking disabled", h.trackingUC.State())
}

func (h *TripHandler) view(c *gin.Context) TripView {
	return TripView{
		Trip:            h.tripUC.State(),
		Display:         h.tripUC.DisplayStatus(c.Request.Context()),
		DurationSeconds: int64(h.tripUC.Duration(h.now()).Seconds()),
	}
}

// tripError maps lifecycle errors onto HTTP statuses
func (h *TripHandler) tripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trip.ErrMissingVehicle),
		errors.Is(err, trip.ErrNoRoute),
		errors.Is(err, trip.ErrInvalidRouteState):
		fail(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, trip.ErrInvalidTransition),
		errors.Is(err, trip.ErrTripInProgress),
		errors.Is(err, trip.ErrNoActiveTrip):
		fail(c, http.StatusConflict, err.Error())
	default:
		logger.Error("Trip operation failed", logger.Err(err))
		_ = c.Error(err)
		fail(c, http.StatusBadGateway, "Route service unavailable, try again")
	}
}

func ok(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, utils.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, utils.ErrorResponse{
		Success: false,
		Error:   message,
		Code:    status,
	})
}
