package trip

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/services/driver"
)

// Lifecycle is the trip state machine of a single driver session:
// idle -> assigned -> active <-> break -> completed -> assigned ...
type Lifecycle struct {
	driverID          string
	routes            driver.RouteGW
	tracker           driver.Tracker
	reportDuringBreak bool
	now               models.Clock

	mu    sync.Mutex
	state models.TripState
	route *models.Route
}

// NewLifecycle creates an idle session for driverID
func NewLifecycle(driverID string, routes driver.RouteGW, tracker driver.Tracker, cfg models.TripConfig) *Lifecycle {
	return &Lifecycle{
		driverID:          driverID,
		routes:            routes,
		tracker:           tracker,
		reportDuringBreak: cfg.ReportDuringBreak,
		now:               models.Now,
		state: models.TripState{
			DriverID: driverID,
			Status:   models.TripStatusIdle,
		},
	}
}

// State returns a copy of the current trip state
func (l *Lifecycle) State() models.TripState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return copyState(l.state)
}

// SelectVehicle sets the vehicle for the next trip
func (l *Lifecycle) SelectVehicle(vehicleID string) error {
	if vehicleID == "" {
		return fmt.Errorf("%w: vehicle id is empty", ErrMissingVehicle)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inTrip() {
		return fmt.Errorf("%w: end the current trip before changing vehicle", ErrTripInProgress)
	}
	l.state.VehicleID = vehicleID
	return nil
}

// RouteAssigned records a route assigned to this driver. A new assignment while
// already assigned replaces the previous route.
func (l *Lifecycle) RouteAssigned(route models.Route) error {
	if route.RouteID == "" {
		return fmt.Errorf("%w: route id is empty", ErrNoRoute)
	}
	if route.DriverID != "" && route.DriverID != l.driverID {
		return fmt.Errorf("%w: route %s belongs to driver %s", ErrInvalidRouteState, route.RouteID, route.DriverID)
	}
	if route.Status == models.RouteStatusCompleted {
		return fmt.Errorf("%w: route %s is already completed", ErrInvalidRouteState, route.RouteID)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inTrip() {
		return fmt.Errorf("%w: finish trip %s first", ErrTripInProgress, l.state.TripID)
	}

	l.route = &route
	l.state.RouteID = route.RouteID
	l.state.TripID = ""
	l.state.StartedAt = nil
	l.state.EndedAt = nil
	l.state.Status = models.TripStatusAssigned

	logger.Info("Route assigned",
		logger.String("driver_id", l.driverID),
		logger.String("route_id", route.RouteID))
	return nil
}

// StartTrip begins the assigned trip and switches position reporting on
func (l *Lifecycle) StartTrip(ctx context.Context) (models.TripState, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inTrip() {
		return copyState(l.state), fmt.Errorf("%w: trip is already %s", ErrInvalidTransition, l.state.Status)
	}
	if l.state.VehicleID == "" {
		return copyState(l.state), fmt.Errorf("%w: select a vehicle before starting the trip", ErrMissingVehicle)
	}
	if l.route == nil || l.state.Status != models.TripStatusAssigned {
		return copyState(l.state), fmt.Errorf("%w: wait for a route assignment", ErrNoRoute)
	}

	route := l.refreshRoute(ctx)
	if !route.Startable() {
		return copyState(l.state), fmt.Errorf("%w: route %s is %s", ErrInvalidRouteState, route.RouteID, route.Status)
	}

	if err := l.routes.StartTrip(ctx, route.RouteID); err != nil {
		return copyState(l.state), fmt.Errorf("failed to start trip: %w", err)
	}
	route.Status = models.RouteStatusInProgress
	l.route = &route

	startedAt := l.now()
	l.state.TripID = uuid.New().String()
	l.state.StartedAt = &startedAt
	l.state.EndedAt = nil
	l.state.Status = models.TripStatusActive

	l.enableTracking()

	logger.Info("Trip started",
		logger.String("driver_id", l.driverID),
		logger.String("trip_id", l.state.TripID),
		logger.String("route_id", route.RouteID),
		logger.String("vehicle_id", l.state.VehicleID))
	return copyState(l.state), nil
}

// TakeBreak pauses an active trip
func (l *Lifecycle) TakeBreak() (models.TripState, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.Status != models.TripStatusActive {
		return copyState(l.state), fmt.Errorf("%w: cannot take a break while %s", ErrInvalidTransition, l.state.Status)
	}
	l.state.Status = models.TripStatusBreak
	if !l.reportDuringBreak {
		l.tracker.Disable()
	}
	return copyState(l.state), nil
}

// Resume continues a trip after a break
func (l *Lifecycle) Resume() (models.TripState, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.Status != models.TripStatusBreak {
		return copyState(l.state), fmt.Errorf("%w: cannot resume while %s", ErrInvalidTransition, l.state.Status)
	}
	l.state.Status = models.TripStatusActive
	if !l.tracker.Tracking() {
		l.enableTracking()
	}
	return copyState(l.state), nil
}

// EndTrip completes the current trip and returns its final state.
// Route and trip ids are cleared; the vehicle stays selected.
func (l *Lifecycle) EndTrip(ctx context.Context) (models.TripState, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.inTrip() || l.route == nil {
		return copyState(l.state), fmt.Errorf("%w: start a trip first", ErrNoActiveTrip)
	}

	if err := l.routes.EndTrip(ctx, l.route.RouteID); err != nil {
		return copyState(l.state), fmt.Errorf("failed to end trip: %w", err)
	}
	l.tracker.Disable()

	endedAt := l.now()
	l.state.EndedAt = &endedAt
	l.state.Status = models.TripStatusCompleted
	finished := copyState(l.state)

	l.state.TripID = ""
	l.state.RouteID = ""
	l.route = nil

	logger.Info("Trip completed",
		logger.String("driver_id", l.driverID),
		logger.String("trip_id", finished.TripID),
		logger.Duration("duration", endedAt.Sub(*finished.StartedAt)))
	return finished, nil
}

// Reset ends the session and returns to idle
func (l *Lifecycle) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tracker.Disable()
	l.route = nil
	l.state = models.TripState{
		DriverID: l.driverID,
		Status:   models.TripStatusIdle,
	}
}

// DisplayStatus prefers the route service's view of the trip and falls back to the
// local status when the route service cannot be reached
func (l *Lifecycle) DisplayStatus(ctx context.Context) models.TripStatusView {
	l.mu.Lock()
	local := l.state.Status
	routeID := l.state.RouteID
	l.mu.Unlock()

	view := models.TripStatusView{
		Status: local,
		Source: models.StatusSourceLocal,
		Local:  local,
	}
	if routeID == "" {
		return view
	}

	route, err := l.routes.GetRoute(ctx, routeID)
	if err != nil || route == nil {
		logger.Debug("Route service unavailable, showing local trip status",
			logger.String("route_id", routeID),
			logger.Err(err))
		return view
	}

	view.Source = models.StatusSourceRoute
	view.RouteStatus = route.Status
	view.Status = route.Status.TripStatus()
	// a break is only known locally; the route just says in progress
	if view.Status == models.TripStatusActive && local == models.TripStatusBreak {
		view.Status = models.TripStatusBreak
	}
	return view
}

// SyncAssignment pulls the driver's assigned route and applies it when the session can
// take a new assignment. It reports whether the assignment changed.
func (l *Lifecycle) SyncAssignment(ctx context.Context) (bool, error) {
	l.mu.Lock()
	status := l.state.Status
	currentRoute := l.state.RouteID
	l.mu.Unlock()

	if status == models.TripStatusActive || status == models.TripStatusBreak {
		return false, nil
	}

	route, err := l.routes.GetAssignedRoute(ctx, l.driverID)
	if err != nil {
		return false, fmt.Errorf("failed to get assigned route: %w", err)
	}
	if route == nil || route.RouteID == currentRoute {
		return false, nil
	}

	if err := l.RouteAssigned(*route); err != nil {
		return false, err
	}
	return true, nil
}

// Duration is the elapsed time of the current or last trip
func (l *Lifecycle) Duration(now time.Time) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.StartedAt == nil {
		return 0
	}
	end := now
	if l.state.EndedAt != nil {
		end = *l.state.EndedAt
	}
	if end.Before(*l.state.StartedAt) {
		return 0
	}
	return end.Sub(*l.state.StartedAt)
}

// EnableTracking switches position reporting on for the selected vehicle, independent of the trip
func (l *Lifecycle) EnableTracking() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.VehicleID == "" {
		return fmt.Errorf("%w: select a vehicle before enabling tracking", ErrMissingVehicle)
	}
	if err := l.tracker.Enable(l.driverID, l.state.VehicleID); err != nil {
		return fmt.Errorf("failed to enable tracking: %w", err)
	}
	return nil
}

// DisableTracking switches position reporting off without touching the trip
func (l *Lifecycle) DisableTracking() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tracker.Disable()
}

func (l *Lifecycle) inTrip() bool {
	return l.state.Status == models.TripStatusActive || l.state.Status == models.TripStatusBreak
}

// refreshRoute returns the route service's copy of the route, or the cached one when unreachable
func (l *Lifecycle) refreshRoute(ctx context.Context) models.Route {
	route, err := l.routes.GetRoute(ctx, l.route.RouteID)
	if err != nil || route == nil {
		logger.Warn("Using cached route status",
			logger.String("route_id", l.route.RouteID),
			logger.Err(err))
		return *l.route
	}
	return *route
}

func (l *Lifecycle) enableTracking() {
	if err := l.tracker.Enable(l.driverID, l.state.VehicleID); err != nil {
		logger.Warn("Position reporting not started",
			logger.String("driver_id", l.driverID),
			logger.Err(err))
	}
}

func copyState(s models.TripState) models.TripState {
	if s.StartedAt != nil {
		started := *s.StartedAt
		s.StartedAt = &started
	}
	if s.EndedAt != nil {
		ended := *s.EndedAt
		s.EndedAt = &ended
	}
	return s
}
