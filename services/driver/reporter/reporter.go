package reporter

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/models"
)

const (
	DefaultInterval       = 30 * time.Second
	DefaultCaptureTimeout = 10 * time.Second
	DefaultMaximumAge     = 5 * time.Second

	// InitialSendTimeout bounds the sample sent by Enable. Disable waits for it
	// instead of cancelling it.
	InitialSendTimeout = 20 * time.Second
)

var (
	// ErrDisabled is returned by Enable when reporting is switched off in configuration
	ErrDisabled = errors.New("position reporting is disabled")
	// ErrMissingIdentity is returned by Enable without both a driver and a vehicle
	ErrMissingIdentity = errors.New("driver and vehicle are required to report positions")
	// ErrNotTracking is returned by ReportNow while the reporter is idle
	ErrNotTracking = errors.New("position reporting is not active")
)

// Display is the most recent fix seen on the device, sent or not
type Display struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	SpeedKmh       float64   `json:"speedKmh"`
	AccuracyMeters float64   `json:"accuracyMeters"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// State is a snapshot of the reporter
type State struct {
	Tracking     bool       `json:"tracking"`
	DriverID     string     `json:"driverId,omitempty"`
	VehicleID    string     `json:"vehicleId,omitempty"`
	Display      *Display   `json:"display,omitempty"`
	LastSentAt   *time.Time `json:"lastSentAt,omitempty"`
	LastAccepted bool       `json:"lastAccepted"`
	LastError    string     `json:"lastError,omitempty"`
	Interval     string     `json:"interval"`
}

// Reporter captures the device position and sends it on a fixed interval while enabled.
// Every Enable starts a new generation; results from older generations are discarded.
type Reporter struct {
	cfg     models.ReporterConfig
	locator Locator
	sender  Sender
	now     models.Clock

	// lifecycle serializes Enable and Disable
	lifecycle sync.Mutex

	mu         sync.Mutex
	state      State
	generation uint64
	runCtx     context.Context
	cancel     context.CancelFunc
	stopWatch  func()
	inflight   sync.WaitGroup
}

// NewReporter creates an idle reporter
func NewReporter(cfg models.ReporterConfig, locator Locator, sender Sender) *Reporter {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.CaptureTimeout <= 0 {
		cfg.CaptureTimeout = DefaultCaptureTimeout
	}
	if cfg.MaximumAge < 0 {
		cfg.MaximumAge = DefaultMaximumAge
	}

	return &Reporter{
		cfg:     cfg,
		locator: locator,
		sender:  sender,
		now:     models.Now,
	}
}

func (r *Reporter) options() CaptureOptions {
	return CaptureOptions{
		HighAccuracy: r.cfg.HighAccuracy,
		Timeout:      r.cfg.CaptureTimeout,
		MaximumAge:   r.cfg.MaximumAge,
	}
}

// Enable starts reporting for the given identities. One sample is sent right away and then
// one per interval. Enabling while already tracking restarts with the new identities.
func (r *Reporter) Enable(driverID, vehicleID string) error {
	if !r.cfg.Enabled {
		return ErrDisabled
	}
	if driverID == "" || vehicleID == "" {
		return ErrMissingIdentity
	}

	r.lifecycle.Lock()
	defer r.lifecycle.Unlock()
	r.disable()

	ctx, cancel := context.WithCancel(context.Background())

	r.mu.Lock()
	r.generation++
	gen := r.generation
	r.runCtx = ctx
	r.cancel = cancel
	r.state = State{
		Tracking:  true,
		DriverID:  driverID,
		VehicleID: vehicleID,
	}
	r.mu.Unlock()

	stop, err := r.locator.Watch(CaptureOptions{HighAccuracy: r.cfg.HighAccuracy, MaximumAge: r.cfg.MaximumAge},
		func(fix Fix, err error) {
			if err != nil {
				logger.Debug("Watch position error", logger.String("driver_id", driverID), logger.Err(err))
				return
			}
			r.setDisplay(gen, fix)
		})
	if err != nil {
		logger.Warn("Failed to watch device position", logger.String("driver_id", driverID), logger.Err(err))
	} else {
		r.mu.Lock()
		r.stopWatch = stop
		r.mu.Unlock()
	}

	initialCtx, initialCancel := context.WithTimeout(context.Background(), InitialSendTimeout)
	r.inflight.Add(2)
	go func() {
		defer r.inflight.Done()
		defer initialCancel()
		_ = r.tick(initialCtx, gen, driverID, vehicleID)
	}()
	go r.run(ctx, gen, driverID, vehicleID)

	logger.Info("Position reporting enabled",
		logger.String("driver_id", driverID),
		logger.String("vehicle_id", vehicleID),
		logger.Duration("interval", r.cfg.Interval))
	return nil
}

// Disable stops reporting. Interval sends in flight are cancelled and the sample sent by
// Enable is allowed to finish. When it returns the watch is unsubscribed and no send is running.
func (r *Reporter) Disable() {
	r.lifecycle.Lock()
	defer r.lifecycle.Unlock()
	r.disable()
}

func (r *Reporter) disable() {
	r.mu.Lock()
	if r.cancel == nil {
		r.mu.Unlock()
		return
	}
	r.cancel()
	r.cancel = nil
	r.runCtx = nil
	r.generation++
	stop := r.stopWatch
	r.stopWatch = nil
	r.state.Tracking = false
	driverID := r.state.DriverID
	r.mu.Unlock()

	if stop != nil {
		stop()
	}
	r.inflight.Wait()
	logger.Info("Position reporting disabled", logger.String("driver_id", driverID))
}

// Tracking reports whether the reporter is enabled
func (r *Reporter) Tracking() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

// ReportNow captures and sends one sample immediately, outside the interval schedule
func (r *Reporter) ReportNow(ctx context.Context) error {
	r.mu.Lock()
	if r.cancel == nil {
		r.mu.Unlock()
		return ErrNotTracking
	}
	gen := r.generation
	runCtx := r.runCtx
	driverID, vehicleID := r.state.DriverID, r.state.VehicleID
	r.inflight.Add(1)
	r.mu.Unlock()
	defer r.inflight.Done()

	tickCtx, cancel := context.WithCancel(runCtx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return r.tick(tickCtx, gen, driverID, vehicleID)
}

// State returns a copy of the current reporter state
func (r *Reporter) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.state
	state.Interval = r.cfg.Interval.String()
	if r.state.Display != nil {
		display := *r.state.Display
		state.Display = &display
	}
	if r.state.LastSentAt != nil {
		sent := *r.state.LastSentAt
		state.LastSentAt = &sent
	}
	return state
}

func (r *Reporter) run(ctx context.Context, gen uint64, driverID, vehicleID string) {
	defer r.inflight.Done()

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.spawnTick(ctx, gen, driverID, vehicleID)
		}
	}
}

// spawnTick runs a tick in its own goroutine so a slow send never delays the schedule
func (r *Reporter) spawnTick(ctx context.Context, gen uint64, driverID, vehicleID string) {
	r.inflight.Add(1)
	go func() {
		defer r.inflight.Done()
		_ = r.tick(ctx, gen, driverID, vehicleID)
	}()
}

func (r *Reporter) tick(ctx context.Context, gen uint64, driverID, vehicleID string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	captureCtx, cancel := context.WithTimeout(ctx, r.cfg.CaptureTimeout)
	fix, err := r.locator.CurrentPosition(captureCtx, r.options())
	cancel()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		r.setError(gen, captureMessage(err))
		logger.Warn("Failed to capture position", logger.String("driver_id", driverID), logger.Err(err))
		return err
	}

	r.setDisplay(gen, fix)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	accepted, err := r.sender.SendLocation(ctx, fix.Position(driverID, vehicleID))
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		r.setError(gen, SendFailedMessage)
		logger.Warn("Failed to send location update", logger.String("driver_id", driverID), logger.Err(err))
		return err
	}

	r.setSent(gen, accepted)
	return nil
}

func (r *Reporter) setDisplay(gen uint64, fix Fix) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.generation {
		return
	}
	r.state.Display = &Display{
		Latitude:       fix.Latitude,
		Longitude:      fix.Longitude,
		SpeedKmh:       fix.SpeedKmh(),
		AccuracyMeters: fix.AccuracyMeters,
		UpdatedAt:      r.now(),
	}
}

func (r *Reporter) setError(gen uint64, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.generation {
		return
	}
	r.state.LastError = message
}

func (r *Reporter) setSent(gen uint64, accepted bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.generation {
		return
	}
	sentAt := r.now()
	r.state.LastSentAt = &sentAt
	r.state.LastAccepted = accepted
	r.state.LastError = ""
}
