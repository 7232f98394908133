package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/internal/utils"
	"github.com/piresc/fleettrack/services/location"
)

// LocationUC implements the location.LocationUC interface
type LocationUC struct {
	repo     location.LocationRepo
	gw       location.LocationGW
	validate *validator.Validate
}

// NewLocationUC creates a new location use case. gw may be nil when no bus is configured.
func NewLocationUC(repo location.LocationRepo, gw location.LocationGW) *LocationUC {
	return &LocationUC{
		repo:     repo,
		gw:       gw,
		validate: validator.New(),
	}
}

// UpdateLocation validates and stores a sample, then announces it when accepted
func (uc *LocationUC) UpdateLocation(ctx context.Context, position models.DevicePosition) (bool, error) {
	if err := uc.validate.Struct(models.NewLocationUpdateRequest(position)); err != nil {
		return false, fmt.Errorf("%w: %s", location.ErrInvalidPosition, describeValidation(err))
	}

	position.CapturedAt = position.CapturedAt.UTC()
	state := models.DriverLiveState{
		DriverID:   position.DriverID,
		Latest:     position,
		GPSEnabled: true,
		LastSeenAt: position.CapturedAt,
		Geohash:    utils.EncodeLocation(position.Location(), utils.GeohashPrecision),
	}

	accepted, err := uc.repo.UpsertLatest(ctx, state)
	if err != nil {
		return false, err
	}
	if !accepted {
		logger.Debug("Ignoring out-of-order location update",
			logger.String("driver_id", position.DriverID),
			logger.Time("captured_at", position.CapturedAt))
		return false, nil
	}

	uc.publish(ctx, state)
	return true, nil
}

// publish is best effort: the update is already stored
func (uc *LocationUC) publish(ctx context.Context, state models.DriverLiveState) {
	if uc.gw == nil {
		return
	}

	event := models.LocationEvent{
		DriverID:   state.DriverID,
		VehicleID:  state.Latest.VehicleID,
		Latitude:   state.Latest.Latitude,
		Longitude:  state.Latest.Longitude,
		SpeedKmh:   state.Latest.SpeedKmh,
		Geohash:    state.Geohash,
		CapturedAt: state.Latest.CapturedAt,
	}
	if err := uc.gw.PublishLocationUpdated(ctx, event); err != nil {
		logger.Warn("Failed to publish location event",
			logger.String("driver_id", state.DriverID),
			logger.Err(err))
	}
}

// GetLiveDrivers returns drivers with GPS enabled ordered by driver id
func (uc *LocationUC) GetLiveDrivers(ctx context.Context) ([]models.DriverLiveState, error) {
	states, err := uc.repo.ListStates(ctx)
	if err != nil {
		return nil, err
	}

	live := make([]models.DriverLiveState, 0, len(states))
	for _, s := range states {
		if s.GPSEnabled {
			live = append(live, s)
		}
	}
	sort.Slice(live, func(i, j int) bool { return live[i].DriverID < live[j].DriverID })
	return live, nil
}

// GetNearbyDrivers returns GPS-enabled drivers within radiusKm, nearest first
func (uc *LocationUC) GetNearbyDrivers(ctx context.Context, center models.Location, radiusKm float64) ([]models.NearbyDriver, error) {
	if err := utils.ValidateCoordinate(center.Latitude, center.Longitude); err != nil {
		return nil, fmt.Errorf("%w: %s", location.ErrInvalidPosition, err.Error())
	}
	if radiusKm <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive", location.ErrInvalidPosition)
	}

	hits, err := uc.repo.FindNearby(ctx, center, radiusKm)
	if err != nil {
		return nil, err
	}

	nearby := make([]models.NearbyDriver, 0, len(hits))
	for _, hit := range hits {
		state, err := uc.repo.GetState(ctx, hit.DriverID)
		if errors.Is(err, location.ErrDriverNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if !state.GPSEnabled {
			continue
		}
		nearby = append(nearby, models.NearbyDriver{
			LiveDriver: models.NewLiveDriver(*state),
			DistanceKm: hit.DistanceKm,
		})
	}
	return nearby, nil
}

// SetGPSEnabled hides or shows a driver in the live set
func (uc *LocationUC) SetGPSEnabled(ctx context.Context, driverID string, enabled bool) error {
	if driverID == "" {
		return fmt.Errorf("%w: driver id is required", location.ErrInvalidPosition)
	}
	return uc.repo.SetGPSEnabled(ctx, driverID, enabled)
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Field() {
	case "Latitude":
		return "latitude must be between -90 and 90"
	case "Longitude":
		return "longitude must be between -180 and 180"
	case "DriverID":
		return "driver id is required"
	case "Timestamp":
		return "capture timestamp is required"
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
