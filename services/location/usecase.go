package location

import (
	"context"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/fleettrack/services/location LocationUC

// LocationUC defines the interface for live position aggregation
type LocationUC interface {
	// UpdateLocation stores the sample unless an equal-or-newer one is already stored.
	// A stale sample is not an error: it returns accepted=false.
	UpdateLocation(ctx context.Context, position models.DevicePosition) (bool, error)
	// GetLiveDrivers returns every driver with GPS enabled, ordered by driver id
	GetLiveDrivers(ctx context.Context) ([]models.DriverLiveState, error)
	GetNearbyDrivers(ctx context.Context, center models.Location, radiusKm float64) ([]models.NearbyDriver, error)
	SetGPSEnabled(ctx context.Context, driverID string, enabled bool) error
}
