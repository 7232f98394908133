package composer

import (
	"hash/fnv"
	"math"
	"time"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

// EntityKind separates vehicles from drivers when placing demo positions
type EntityKind string

const (
	KindVehicle EntityKind = "vehicle"
	KindDriver  EntityKind = "driver"
)

const DefaultStaleAfter = 5 * time.Minute

// PositionResolver picks one position per entity: a fresh live sample, then the
// persisted record coordinate, then a deterministic demo spot in the default area
type PositionResolver struct {
	StaleAfter    time.Duration
	Center        models.Location
	VehicleSpread float64
	DriverSpread  float64
}

// NewPositionResolver builds a resolver from the fleet configuration
func NewPositionResolver(cfg models.FleetConfig) PositionResolver {
	r := PositionResolver{
		StaleAfter:    cfg.StaleAfter,
		Center:        models.Location{Latitude: cfg.DefaultLatitude, Longitude: cfg.DefaultLongitude},
		VehicleSpread: cfg.VehicleSpread,
		DriverSpread:  cfg.DriverSpread,
	}
	if r.StaleAfter <= 0 {
		r.StaleAfter = DefaultStaleAfter
	}
	return r
}

// Resolve returns the best available position for an entity
func (r PositionResolver) Resolve(kind EntityKind, id string, live *models.LiveDriver, persisted *models.Location, now time.Time) models.ResolvedPosition {
	var resolved models.ResolvedPosition

	if live != nil {
		seen := live.LastLocationUpdate
		resolved.LastSeenAt = &seen
		if live.GPSEnabled && now.Sub(seen) <= r.StaleAfter {
			resolved.Location = models.Location{Latitude: live.Latitude, Longitude: live.Longitude}
			resolved.Provenance = models.ProvenanceLive
			return resolved
		}
		resolved.Stale = true
	}

	if persisted != nil {
		resolved.Location = *persisted
		resolved.Provenance = models.ProvenancePersisted
		return resolved
	}

	resolved.Location = r.demoLocation(kind, id)
	resolved.Provenance = models.ProvenanceDemo
	return resolved
}

// demoLocation spreads entities around the center by hashing their id
func (r PositionResolver) demoLocation(kind EntityKind, id string) models.Location {
	spread := r.VehicleSpread
	if kind == KindDriver {
		spread = r.DriverSpread
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(string(kind) + ":" + id))
	sum := h.Sum64()

	u := float64(sum&0xffffffff) / math.MaxUint32
	v := float64(sum>>32) / math.MaxUint32
	return models.Location{
		Latitude:  r.Center.Latitude + (2*u-1)*spread,
		Longitude: r.Center.Longitude + (2*v-1)*spread,
	}
}
