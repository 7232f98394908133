package driver

import (
	"context"
	"time"

	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/services/driver/reporter"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/fleettrack/services/driver TripUC,TrackingUC,Tracker

// TripUC drives one driver session through its trips
type TripUC interface {
	State() models.TripState
	SelectVehicle(vehicleID string) error
	RouteAssigned(route models.Route) error
	StartTrip(ctx context.Context) (models.TripState, error)
	TakeBreak() (models.TripState, error)
	Resume() (models.TripState, error)
	EndTrip(ctx context.Context) (models.TripState, error)
	Reset()
	DisplayStatus(ctx context.Context) models.TripStatusView
	SyncAssignment(ctx context.Context) (bool, error)
	Duration(now time.Time) time.Duration
	EnableTracking() error
	DisableTracking()
}

// TrackingUC exposes the position reporter to the control API
type TrackingUC interface {
	State() reporter.State
	ReportNow(ctx context.Context) error
}

// Tracker is the part of the reporter the trip lifecycle switches on and off
type Tracker interface {
	Enable(driverID, vehicleID string) error
	Disable()
	Tracking() bool
}
