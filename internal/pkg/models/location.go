package models

import "time"

// Location represents a geographical location with latitude and longitude
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// DevicePosition is a single geolocation sample captured on a driver's device.
// A new value is produced for every capture; it is never amended afterwards.
type DevicePosition struct {
	DriverID       string    `json:"driverId"`
	VehicleID      string    `json:"vehicleId"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	SpeedKmh       float64   `json:"speedKmh"`
	AccuracyMeters float64   `json:"accuracyMeters"`
	CapturedAt     time.Time `json:"capturedAt"`
}

// Location returns the coordinate part of the sample
func (p DevicePosition) Location() Location {
	return Location{Latitude: p.Latitude, Longitude: p.Longitude}
}

// DriverLiveState is the aggregator's view of one driver.
// LastSeenAt mirrors Latest.CapturedAt, so staleness follows device time.
type DriverLiveState struct {
	DriverID   string         `json:"driverId"`
	Latest     DevicePosition `json:"latest"`
	GPSEnabled bool           `json:"gpsEnabled"`
	LastSeenAt time.Time      `json:"lastSeenAt"`
	Geohash    string         `json:"geohash,omitempty"`
}

// LocationUpdateRequest is the wire body of POST /telemetry/update-location
type LocationUpdateRequest struct {
	DriverID       string    `json:"driverId" validate:"required"`
	VehicleID      string    `json:"vehicleId"`
	Latitude       float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude      float64   `json:"longitude" validate:"gte=-180,lte=180"`
	SpeedKmh       float64   `json:"speedKmh" validate:"gte=0"`
	AccuracyMeters float64   `json:"accuracyMeters" validate:"gte=0"`
	Timestamp      time.Time `json:"timestamp" validate:"required"`
}

// ToPosition converts the wire request into a DevicePosition
func (r LocationUpdateRequest) ToPosition() DevicePosition {
	return DevicePosition{
		DriverID:       r.DriverID,
		VehicleID:      r.VehicleID,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		SpeedKmh:       r.SpeedKmh,
		AccuracyMeters: r.AccuracyMeters,
		CapturedAt:     r.Timestamp,
	}
}

// NewLocationUpdateRequest builds the wire body for a captured position
func NewLocationUpdateRequest(p DevicePosition) LocationUpdateRequest {
	return LocationUpdateRequest{
		DriverID:       p.DriverID,
		VehicleID:      p.VehicleID,
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		SpeedKmh:       p.SpeedKmh,
		AccuracyMeters: p.AccuracyMeters,
		Timestamp:      p.CapturedAt,
	}
}

// LocationUpdateResult reports whether the aggregator kept the sample
type LocationUpdateResult struct {
	Accepted bool `json:"accepted"`
}

// LiveDriver is one entry of GET /drivers/live-tracking
type LiveDriver struct {
	DriverID           string    `json:"driverId"`
	VehicleID          string    `json:"vehicleId,omitempty"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	SpeedKmh           float64   `json:"speedKmh"`
	AccuracyMeters     float64   `json:"accuracyMeters"`
	GPSEnabled         bool      `json:"gpsEnabled"`
	LastLocationUpdate time.Time `json:"lastLocationUpdate"`
	Geohash            string    `json:"geohash,omitempty"`
}

// NewLiveDriver flattens a live state into its wire form
func NewLiveDriver(s DriverLiveState) LiveDriver {
	return LiveDriver{
		DriverID:           s.DriverID,
		VehicleID:          s.Latest.VehicleID,
		Latitude:           s.Latest.Latitude,
		Longitude:          s.Latest.Longitude,
		SpeedKmh:           s.Latest.SpeedKmh,
		AccuracyMeters:     s.Latest.AccuracyMeters,
		GPSEnabled:         s.GPSEnabled,
		LastLocationUpdate: s.LastSeenAt,
		Geohash:            s.Geohash,
	}
}

// LocationEvent is published on the message bus for every accepted update
type LocationEvent struct {
	DriverID   string    `json:"driver_id"`
	VehicleID  string    `json:"vehicle_id,omitempty"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	SpeedKmh   float64   `json:"speed_kmh"`
	Geohash    string    `json:"geohash,omitempty"`
	CapturedAt time.Time `json:"captured_at"`
}

// NearbyDriver is a live driver with its distance from a query point
type NearbyDriver struct {
	LiveDriver
	DistanceKm float64 `json:"distanceKm"`
}

// GPSRequest toggles whether a driver appears in the live set
type GPSRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}
