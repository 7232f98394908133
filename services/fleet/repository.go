package fleet

import (
	"context"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/fleettrack/services/fleet FleetRepo

// FleetRepo reads the fleet records owned by other services
type FleetRepo interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	ListDrivers(ctx context.Context) ([]models.Driver, error)
	ListRoutes(ctx context.Context) ([]models.Route, error)
}
