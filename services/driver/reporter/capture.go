package reporter

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

// ErrorKind classifies a failed position capture
type ErrorKind string

const (
	KindPermissionDenied    ErrorKind = "permission denied"
	KindPositionUnavailable ErrorKind = "position unavailable"
	KindTimeout             ErrorKind = "timeout"
)

// CaptureError is returned by a Locator when no fix could be produced
type CaptureError struct {
	Kind ErrorKind
	Err  error
}

func (e *CaptureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *CaptureError) Unwrap() error {
	return e.Err
}

// Message is the text shown to the driver
func (e *CaptureError) Message() string {
	return "Location error: " + string(e.Kind)
}

// SendFailedMessage is shown when a captured sample could not be delivered
const SendFailedMessage = "Failed to send location update"

// Fix is a raw reading from the device. SpeedMps may be negative or NaN when unknown.
type Fix struct {
	Latitude       float64
	Longitude      float64
	SpeedMps       float64
	AccuracyMeters float64
	Timestamp      time.Time
}

// SpeedKmh converts the device speed, treating unknown speed as zero
func (f Fix) SpeedKmh() float64 {
	if math.IsNaN(f.SpeedMps) || math.IsInf(f.SpeedMps, 0) {
		return 0
	}
	return math.Abs(f.SpeedMps * 3.6)
}

// Position stamps the fix with the reporting identities
func (f Fix) Position(driverID, vehicleID string) models.DevicePosition {
	return models.DevicePosition{
		DriverID:       driverID,
		VehicleID:      vehicleID,
		Latitude:       f.Latitude,
		Longitude:      f.Longitude,
		SpeedKmh:       f.SpeedKmh(),
		AccuracyMeters: f.AccuracyMeters,
		CapturedAt:     f.Timestamp,
	}
}

// CaptureOptions mirror the device geolocation options
type CaptureOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration
}

// Locator is the device position source
type Locator interface {
	// CurrentPosition returns a single fix or a *CaptureError
	CurrentPosition(ctx context.Context, opts CaptureOptions) (Fix, error)
	// Watch calls handle for every fix or error until stop is called.
	// stop blocks until no further calls to handle can happen.
	Watch(opts CaptureOptions, handle func(Fix, error)) (stop func(), err error)
}

// Sender delivers a captured sample to the aggregator
type Sender interface {
	SendLocation(ctx context.Context, position models.DevicePosition) (accepted bool, err error)
}

// captureMessage returns the user-visible text for a capture failure
func captureMessage(err error) string {
	var captureErr *CaptureError
	if errors.As(err, &captureErr) {
		return captureErr.Message()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return (&CaptureError{Kind: KindTimeout}).Message()
	}
	return (&CaptureError{Kind: KindPositionUnavailable}).Message()
}
