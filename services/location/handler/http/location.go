package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/middleware"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/internal/utils"
	"github.com/piresc/fleettrack/services/location"
)

// LocationHandler handles HTTP requests for location operations
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// UpdateLocation handles POST /telemetry/update-location
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	var req models.LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if driverID, ok := middleware.DriverIDFromContext(c); ok && driverID != req.DriverID {
		logger.Warn("Driver id does not match token",
			logger.String("token_driver_id", driverID),
			logger.String("body_driver_id", req.DriverID))
		return utils.ForbiddenResponse(c, "driverId does not match token")
	}

	accepted, err := h.locationUC.UpdateLocation(c.Request().Context(), req.ToPosition())
	if err != nil {
		if errors.Is(err, location.ErrInvalidPosition) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to update driver location",
			logger.String("driver_id", req.DriverID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to update location")
	}

	message := "Location updated"
	if !accepted {
		message = "Location ignored: a newer sample is already stored"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, models.LocationUpdateResult{Accepted: accepted})
}

// GetLiveDrivers handles GET /drivers/live-tracking
func (h *LocationHandler) GetLiveDrivers(c echo.Context) error {
	states, err := h.locationUC.GetLiveDrivers(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get live drivers", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get live drivers")
	}

	drivers := make([]models.LiveDriver, 0, len(states))
	for _, s := range states {
		drivers = append(drivers, models.NewLiveDriver(s))
	}
	return utils.SuccessResponse(c, http.StatusOK, "Live drivers", drivers)
}

// GetNearbyDrivers handles GET /drivers/nearby?lat=&lng=&radius_km=
func (h *LocationHandler) GetNearbyDrivers(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil {
		return utils.BadRequestResponse(c, "lat and lng are required")
	}

	radiusKm := 5.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		r, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid radius_km")
		}
		radiusKm = r
	}

	drivers, err := h.locationUC.GetNearbyDrivers(c.Request().Context(), models.Location{Latitude: lat, Longitude: lng}, radiusKm)
	if err != nil {
		if errors.Is(err, location.ErrInvalidPosition) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to find nearby drivers", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to find nearby drivers")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers", drivers)
}

// SetGPSEnabled handles PUT /drivers/:id/gps
func (h *LocationHandler) SetGPSEnabled(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "driver id is required")
	}

	var req models.GPSRequest
	if err := c.Bind(&req); err != nil || req.Enabled == nil {
		return utils.BadRequestResponse(c, "enabled is required")
	}

	if err := h.locationUC.SetGPSEnabled(c.Request().Context(), driverID, *req.Enabled); err != nil {
		switch {
		case errors.Is(err, location.ErrDriverNotFound):
			return utils.NotFoundResponse(c, "driver has not reported a location")
		case errors.Is(err, location.ErrInvalidPosition):
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to set gps flag", logger.String("driver_id", driverID), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to update gps flag")
	}

	return utils.SuccessResponse(c, http.StatusOK, "GPS flag updated", map[string]bool{"gpsEnabled": *req.Enabled})
}
