package fleet

import (
	"context"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/fleettrack/services/fleet FleetUC

// FleetUC serves the fleet dashboard
type FleetUC interface {
	View(opts models.FleetViewOptions) models.FleetView
	Refresh(ctx context.Context) error
	AssignDriver(ctx context.Context, bookingID string, req models.AssignDriverRequest) (*models.Booking, error)
}
