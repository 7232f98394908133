package location

import (
	"context"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/fleettrack/services/location LocationGW

// LocationGW publishes aggregator events
type LocationGW interface {
	PublishLocationUpdated(ctx context.Context, event models.LocationEvent) error
}
