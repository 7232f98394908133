package driver

import (
	"context"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/fleettrack/services/driver RouteGW,LocationGW

// RouteGW talks to the route service
type RouteGW interface {
	GetRoute(ctx context.Context, routeID string) (*models.Route, error)
	// GetAssignedRoute returns nil without error when the driver has no assignment
	GetAssignedRoute(ctx context.Context, driverID string) (*models.Route, error)
	StartTrip(ctx context.Context, routeID string) error
	EndTrip(ctx context.Context, routeID string) error
}

// LocationGW delivers captured samples to the location service
type LocationGW interface {
	SendLocation(ctx context.Context, position models.DevicePosition) (bool, error)
}
