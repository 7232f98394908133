package device

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/internal/utils"
	"github.com/piresc/fleettrack/services/driver/reporter"
)

const (
	defaultFixInterval = time.Second
	defaultSpeedKmh    = 40.0
	defaultAccuracy    = 8.0
)

// Simulator is a GPS receiver that drives back and forth along a waypoint path
type Simulator struct {
	path        []models.Location
	cumulative  []float64
	speedKmh    float64
	accuracy    float64
	fixInterval time.Duration
	denied      bool
	now         models.Clock
	start       time.Time

	mu   sync.Mutex
	last *reporter.Fix
}

// NewSimulator builds a simulator from "lat,lon" waypoints
func NewSimulator(cfg models.DeviceConfig) (*Simulator, error) {
	if len(cfg.Waypoints) == 0 {
		return nil, errors.New("at least one waypoint is required")
	}

	path := make([]models.Location, 0, len(cfg.Waypoints))
	for i, raw := range cfg.Waypoints {
		loc, err := utils.ParseCoordinate(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid waypoint %d: %w", i, err)
		}
		path = append(path, loc)
	}

	cumulative := make([]float64, len(path))
	for i := 1; i < len(path); i++ {
		cumulative[i] = cumulative[i-1] + utils.DistanceBetween(path[i-1], path[i])
	}

	s := &Simulator{
		path:        path,
		cumulative:  cumulative,
		speedKmh:    cfg.SpeedKmh,
		accuracy:    cfg.AccuracyMeters,
		fixInterval: cfg.FixInterval,
		denied:      cfg.PermissionDenied,
		now:         models.Now,
	}
	if s.speedKmh <= 0 {
		s.speedKmh = defaultSpeedKmh
	}
	if s.accuracy <= 0 {
		s.accuracy = defaultAccuracy
	}
	if s.fixInterval <= 0 {
		s.fixInterval = defaultFixInterval
	}
	s.start = s.now()
	return s, nil
}

// CurrentPosition returns a fresh fix, or the previous one when it is younger than MaximumAge
func (s *Simulator) CurrentPosition(ctx context.Context, opts reporter.CaptureOptions) (reporter.Fix, error) {
	if s.denied {
		return reporter.Fix{}, &reporter.CaptureError{Kind: reporter.KindPermissionDenied}
	}
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return reporter.Fix{}, &reporter.CaptureError{Kind: reporter.KindTimeout, Err: err}
		}
		return reporter.Fix{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.last != nil && opts.MaximumAge > 0 && now.Sub(s.last.Timestamp) <= opts.MaximumAge {
		return *s.last, nil
	}
	fix := s.fixAt(now, opts.HighAccuracy)
	s.last = &fix
	return fix, nil
}

// Watch emits a fix every hardware interval until stop is called
func (s *Simulator) Watch(opts reporter.CaptureOptions, handle func(reporter.Fix, error)) (func(), error) {
	if s.denied {
		return nil, &reporter.CaptureError{Kind: reporter.KindPermissionDenied}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(s.fixInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				handle(s.fixAt(s.now(), opts.HighAccuracy), nil)
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}, nil
}

func (s *Simulator) fixAt(now time.Time, highAccuracy bool) reporter.Fix {
	loc := s.positionAt(now.Sub(s.start))
	accuracy := s.accuracy
	if !highAccuracy {
		accuracy *= 4
	}
	speed := s.speedKmh / 3.6
	if len(s.path) == 1 {
		speed = 0
	}
	return reporter.Fix{
		Latitude:       loc.Latitude,
		Longitude:      loc.Longitude,
		SpeedMps:       speed,
		AccuracyMeters: accuracy,
		Timestamp:      now,
	}
}

// positionAt interpolates along the path, reversing at each end
func (s *Simulator) positionAt(elapsed time.Duration) models.Location {
	total := s.cumulative[len(s.cumulative)-1]
	if total == 0 || elapsed <= 0 {
		return s.path[0]
	}

	travelled := math.Mod(s.speedKmh*elapsed.Hours(), 2*total)
	if travelled > total {
		travelled = 2*total - travelled
	}

	for i := 1; i < len(s.path); i++ {
		if travelled > s.cumulative[i] {
			continue
		}
		segment := s.cumulative[i] - s.cumulative[i-1]
		if segment == 0 {
			return s.path[i]
		}
		ratio := (travelled - s.cumulative[i-1]) / segment
		a, b := s.path[i-1], s.path[i]
		return models.Location{
			Latitude:  a.Latitude + (b.Latitude-a.Latitude)*ratio,
			Longitude: a.Longitude + (b.Longitude-a.Longitude)*ratio,
		}
	}
	return s.path[len(s.path)-1]
}
