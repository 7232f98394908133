package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/fleettrack/internal/pkg/constants"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/internal/pkg/websocket"
	"github.com/piresc/fleettrack/internal/utils"
	"github.com/piresc/fleettrack/services/fleet"
)

// FleetHandler serves the fleet dashboard
type FleetHandler struct {
	fleetUC fleet.FleetUC
	hub     *websocket.Manager
}

// NewFleetHandler creates a new fleet HTTP handler
func NewFleetHandler(fleetUC fleet.FleetUC, hub *websocket.Manager) *FleetHandler {
	return &FleetHandler{
		fleetUC: fleetUC,
		hub:     hub,
	}
}

// streamOptions is the view pushed to stream subscribers
var streamOptions = models.FleetViewOptions{ShowVehicles: true, ShowDrivers: true}

// GetView handles GET /fleet/view
func (h *FleetHandler) GetView(c echo.Context) error {
	opts, err := parseViewOptions(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fleet view", h.fleetUC.View(opts))
}

// Stream handles GET /fleet/stream, pushing a fresh view after every poll
func (h *FleetHandler) Stream(c echo.Context) error {
	greeting, err := websocket.NewMessage(constants.EventFleetView, h.fleetUC.View(streamOptions))
	if err != nil {
		return utils.InternalServerErrorResponse(c, "failed to build fleet view")
	}
	return h.hub.HandleConnection(c, &greeting)
}

// BroadcastView sends the current view to every stream subscriber
func (h *FleetHandler) BroadcastView() {
	if h.hub.ClientCount() == 0 {
		return
	}
	if err := h.hub.Broadcast(constants.EventFleetView, h.fleetUC.View(streamOptions)); err != nil {
		logger.Warn("Failed to broadcast fleet view", logger.Err(err))
	}
}

// AssignDriver handles POST /bookings/:id/assign
func (h *FleetHandler) AssignDriver(c echo.Context) error {
	var req models.AssignDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	booking, err := h.fleetUC.AssignDriver(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, fleet.ErrInvalidAssignment) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to assign driver",
			logger.String("booking_id", c.Param("id")),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "booking service rejected the assignment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver assigned", booking)
}

func parseViewOptions(c echo.Context) (models.FleetViewOptions, error) {
	opts := models.FleetViewOptions{
		Query:             c.QueryParam("q"),
		SelectedVehicleID: c.QueryParam("vehicle"),
	}

	var err error
	if opts.ShowVehicles, err = boolParam(c, "vehicles", true); err != nil {
		return opts, err
	}
	if opts.ShowDrivers, err = boolParam(c, "drivers", true); err != nil {
		return opts, err
	}
	if opts.ShowConnector, err = boolParam(c, "connector", false); err != nil {
		return opts, err
	}

	rawLat, rawLng := c.QueryParam("viewer_lat"), c.QueryParam("viewer_lng")
	if rawLat == "" && rawLng == "" {
		return opts, nil
	}
	lat, errLat := strconv.ParseFloat(rawLat, 64)
	lng, errLng := strconv.ParseFloat(rawLng, 64)
	if errLat != nil || errLng != nil {
		return opts, errors.New("viewer_lat and viewer_lng must both be numbers")
	}
	if err := utils.ValidateCoordinate(lat, lng); err != nil {
		return opts, err
	}
	opts.Viewer = &models.Location{Latitude: lat, Longitude: lng}
	return opts, nil
}

func boolParam(c echo.Context, name string, def bool) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def, errors.New("invalid " + name + " flag")
	}
	return v, nil
}
