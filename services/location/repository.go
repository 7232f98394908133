package location

import (
	"context"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/fleettrack/services/location LocationRepo

// LocationRepo defines the interface for live state storage
type LocationRepo interface {
	// UpsertLatest atomically replaces the stored state when state.Latest is not older
	// than what is stored, and reports whether it did
	UpsertLatest(ctx context.Context, state models.DriverLiveState) (bool, error)
	ListStates(ctx context.Context) ([]models.DriverLiveState, error)
	// FindNearby returns drivers within radiusKm of center, nearest first
	FindNearby(ctx context.Context, center models.Location, radiusKm float64) ([]DriverDistance, error)
	GetState(ctx context.Context, driverID string) (*models.DriverLiveState, error)
	SetGPSEnabled(ctx context.Context, driverID string, enabled bool) error
}

// DriverDistance is a geo index hit
type DriverDistance struct {
	DriverID   string
	DistanceKm float64
}
