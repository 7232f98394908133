package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/services/fleet"
	"github.com/piresc/fleettrack/services/fleet/composer"
)

// FleetUC polls fleet data and composes dashboard views from the latest poll
type FleetUC struct {
	repo     fleet.FleetRepo
	feed     fleet.LiveFeedGW
	booking  fleet.BookingGW
	composer *composer.Composer
	validate *validator.Validate
	now      models.Clock

	mu        sync.RWMutex
	snapshot  composer.Snapshot
	onRefresh []func()

	nudge chan struct{}
}

// NewFleetUC creates a new fleet use case
func NewFleetUC(repo fleet.FleetRepo, feed fleet.LiveFeedGW, booking fleet.BookingGW, cfg models.FleetConfig) *FleetUC {
	return &FleetUC{
		repo:     repo,
		feed:     feed,
		booking:  booking,
		composer: composer.NewComposer(composer.NewPositionResolver(cfg)),
		validate: validator.New(),
		now:      models.Now,
		snapshot: composer.Snapshot{FeedMode: models.FeedModeUnavailable},
		nudge:    make(chan struct{}, 1),
	}
}

// OnRefresh registers fn to run after every completed poll
func (uc *FleetUC) OnRefresh(fn func()) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.onRefresh = append(uc.onRefresh, fn)
}

// View composes the dashboard from the latest poll
func (uc *FleetUC) View(opts models.FleetViewOptions) models.FleetView {
	uc.mu.RLock()
	snap := uc.snapshot
	uc.mu.RUnlock()

	return uc.composer.Compose(snap, opts, uc.now())
}

// Refresh polls records and the live feed. A failed record read keeps the previous
// records; a failed live read switches the feed to unavailable.
func (uc *FleetUC) Refresh(ctx context.Context) error {
	uc.mu.RLock()
	next := uc.snapshot
	uc.mu.RUnlock()

	var errs []error
	if vehicles, err := uc.repo.ListVehicles(ctx); err != nil {
		errs = append(errs, err)
	} else {
		next.Vehicles = vehicles
	}
	if drivers, err := uc.repo.ListDrivers(ctx); err != nil {
		errs = append(errs, err)
	} else {
		next.Drivers = drivers
	}
	if routes, err := uc.repo.ListRoutes(ctx); err != nil {
		errs = append(errs, err)
	} else {
		next.Routes = routes
	}

	live, err := uc.feed.GetLiveDrivers(ctx)
	if err != nil {
		logger.Warn("Live driver feed unavailable", logger.Err(err))
		next.Live = nil
		next.FeedMode = models.FeedModeUnavailable
	} else {
		next.Live = live
		next.FeedMode = models.FeedModeLive
	}
	next.PolledAt = uc.now()

	uc.mu.Lock()
	uc.snapshot = next
	listeners := append([]func(){}, uc.onRefresh...)
	uc.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to refresh fleet records: %w", errors.Join(errs...))
	}
	return nil
}

// Nudge asks the poller to refresh before the next tick
func (uc *FleetUC) Nudge() {
	select {
	case uc.nudge <- struct{}{}:
	default:
	}
}

// Run refreshes immediately, then every interval or on Nudge, until ctx is done
func (uc *FleetUC) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := uc.Refresh(ctx); err != nil {
			logger.Warn("Fleet refresh incomplete", logger.Err(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-uc.nudge:
		}
	}
}

// AssignDriver assigns a driver and route to a booking and refreshes the view
func (uc *FleetUC) AssignDriver(ctx context.Context, bookingID string, req models.AssignDriverRequest) (*models.Booking, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("%w: booking id is required", fleet.ErrInvalidAssignment)
	}
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: driverId and routeId are required", fleet.ErrInvalidAssignment)
	}

	booking, err := uc.booking.AssignDriver(ctx, bookingID, req)
	if err != nil {
		return nil, err
	}

	logger.Info("Driver assigned to booking",
		logger.String("booking_id", bookingID),
		logger.String("driver_id", req.DriverID),
		logger.String("route_id", req.RouteID))
	uc.Nudge()
	return booking, nil
}
