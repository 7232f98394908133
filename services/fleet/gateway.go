package fleet

import (
	"context"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/fleettrack/services/fleet LiveFeedGW,BookingGW

// LiveFeedGW reads the live driver set from the location service
type LiveFeedGW interface {
	GetLiveDrivers(ctx context.Context) ([]models.LiveDriver, error)
}

// BookingGW talks to the booking service
type BookingGW interface {
	AssignDriver(ctx context.Context, bookingID string, req models.AssignDriverRequest) (*models.Booking, error)
}
