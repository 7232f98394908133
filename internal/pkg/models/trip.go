package models

import (
	"time"
)

// TripStatus represents the current status of a driver's trip
type TripStatus string

const (
	TripStatusIdle      TripStatus = "idle"
	TripStatusAssigned  TripStatus = "assigned"
	TripStatusActive    TripStatus = "active"
	TripStatusBreak     TripStatus = "break"
	TripStatusCompleted TripStatus = "completed"
)

// StatusSource tells where a displayed trip status came from
type StatusSource string

const (
	// StatusSourceRoute means the status was derived from the authoritative route record
	StatusSourceRoute StatusSource = "route"
	// StatusSourceLocal means the route collaborator was unreachable and local state is shown
	StatusSourceLocal StatusSource = "local"
)

// TripState is the client session's view of the current trip
type TripState struct {
	TripID    string     `json:"trip_id,omitempty"`
	DriverID  string     `json:"driver_id"`
	VehicleID string     `json:"vehicle_id,omitempty"`
	RouteID   string     `json:"route_id,omitempty"`
	Status    TripStatus `json:"status"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// TripStatusView is the status shown to the driver together with its provenance
type TripStatusView struct {
	Status      TripStatus   `json:"status"`
	Source      StatusSource `json:"source"`
	RouteStatus RouteStatus  `json:"route_status,omitempty"`
	Local       TripStatus   `json:"local_status"`
}
