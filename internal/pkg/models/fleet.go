package models

import "time"

// Vehicle is a fleet vehicle record. Coordinates are the last persisted position, if any.
type Vehicle struct {
	ID        string   `json:"id" db:"id"`
	Model     string   `json:"model" db:"model"`
	VIN       string   `json:"vin" db:"vin"`
	Status    string   `json:"status" db:"status"`
	Latitude  *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64 `json:"longitude,omitempty" db:"longitude"`
}

// Driver is a fleet driver record
type Driver struct {
	ID            string   `json:"id" db:"id"`
	Name          string   `json:"name" db:"name"`
	LicenseNumber string   `json:"licenseNumber" db:"license_number"`
	Status        string   `json:"status" db:"status"`
	Latitude      *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64 `json:"longitude,omitempty" db:"longitude"`
}

// PersistedLocation returns the record's stored coordinate, if both parts are present
func (v Vehicle) PersistedLocation() (Location, bool) {
	return persisted(v.Latitude, v.Longitude)
}

// PersistedLocation returns the record's stored coordinate, if both parts are present
func (d Driver) PersistedLocation() (Location, bool) {
	return persisted(d.Latitude, d.Longitude)
}

func persisted(lat, lng *float64) (Location, bool) {
	if lat == nil || lng == nil {
		return Location{}, false
	}
	return Location{Latitude: *lat, Longitude: *lng}, true
}

// Provenance tells which source a displayed position came from
type Provenance string

const (
	ProvenanceLive      Provenance = "live"
	ProvenancePersisted Provenance = "persisted"
	ProvenanceDemo      Provenance = "demo"
)

// FeedMode reports whether the live driver feed answered the last poll
type FeedMode string

const (
	FeedModeLive        FeedMode = "live"
	FeedModeUnavailable FeedMode = "unavailable"
)

// ResolvedPosition is an entity position together with where it came from
type ResolvedPosition struct {
	Location
	Provenance Provenance `json:"provenance"`
	LastSeenAt *time.Time `json:"lastSeenAt,omitempty"`
	Stale      bool       `json:"stale"`
}

// VehicleMarker is one vehicle on the dashboard map
type VehicleMarker struct {
	Vehicle    Vehicle          `json:"vehicle"`
	DriverID   string           `json:"driverId,omitempty"`
	DriverName string           `json:"driverName,omitempty"`
	Position   ResolvedPosition `json:"position"`
}

// DriverMarker is one driver on the dashboard map
type DriverMarker struct {
	DriverID  string           `json:"driverId"`
	Name      string           `json:"name,omitempty"`
	VehicleID string           `json:"vehicleId,omitempty"`
	SpeedKmh  float64          `json:"speedKmh"`
	Position  ResolvedPosition `json:"position"`
}

// Selection describes the vehicle picked on the map relative to the viewer
type Selection struct {
	VehicleID  string     `json:"vehicleId"`
	Position   Location   `json:"position"`
	DistanceKm *float64   `json:"distanceKm,omitempty"`
	Connector  []Location `json:"connector,omitempty"`
}

// RouteSummary is one row of the dashboard routes table
type RouteSummary struct {
	RouteID    string      `json:"routeId"`
	DriverID   string      `json:"driverId"`
	Status     RouteStatus `json:"status"`
	DistanceKm float64     `json:"distanceKm"`
}

// FleetCounts are the dashboard headline numbers
type FleetCounts struct {
	TotalVehicles int `json:"totalVehicles"`
	ShownVehicles int `json:"shownVehicles"`
	LiveDrivers   int `json:"liveDrivers"`
}

// FleetView is everything the dashboard renders
type FleetView struct {
	Vehicles  []VehicleMarker `json:"vehicles"`
	Drivers   []DriverMarker  `json:"drivers"`
	Selection *Selection      `json:"selection,omitempty"`
	Routes    []RouteSummary  `json:"routes"`
	Counts    FleetCounts     `json:"counts"`
	FeedMode  FeedMode        `json:"feedMode"`
	PolledAt  time.Time       `json:"polledAt"`
}

// FleetViewOptions are the dashboard filters and selection
type FleetViewOptions struct {
	Query             string
	ShowVehicles      bool
	ShowDrivers       bool
	SelectedVehicleID string
	Viewer            *Location
	ShowConnector     bool
}
